package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase"
	"gestorpro/pkg"
)

// PortalHandler serves the tenant self-service pages and online rent payment.
type PortalHandler struct {
	portal   usecase.IPortal
	checkout usecase.IRentCheckout
	mockMode bool
	logger   *zap.Logger
}

func NewPortalHandler(portal usecase.IPortal, checkout usecase.IRentCheckout, mockMode bool, logger *zap.Logger) *PortalHandler {
	return &PortalHandler{portal: portal, checkout: checkout, mockMode: mockMode, logger: logging.OrNop(logger).Named("portal_handler")}
}

// Overview godoc
// @Summary   Tenant portal
// @Tags      portal
// @Security  Bearer
// @Produce   json
// @Success   200  {object}  usecase.PortalView
// @Failure   403  {object}  pkg.HTTPError
// @Router    /portal [get]
func (h *PortalHandler) Overview(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.portal.Overview(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapPortalError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *PortalHandler) ReportMaintenance(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	ticket, err := h.portal.ReportMaintenance(c.Request.Context(), actor, req.Description)
	if err != nil {
		respondError(c, mapPortalError(err))
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// Checkout pays a pending rent payment through Mercado Pago.
func (h *PortalHandler) Checkout(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	paymentID := c.Param("id")
	h.logger.Info("checkout start", zap.String("org_id", actor.OrgID), zap.String("record_id", paymentID))

	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, invalidRequest())
		return
	}
	mpPayload, err := request.ParseCheckout(raw)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("invalid payload", zap.String("record_id", paymentID), zap.Error(err))
			respondError(c, invalidRequest())
			return
		}
		h.logger.Info("payload invalid in mock mode; fallback to empty payload", zap.String("record_id", paymentID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	result, err := h.checkout.Checkout(c.Request.Context(), actor, paymentID, mpPayload)
	if err != nil {
		h.logger.Warn("checkout failed", zap.String("record_id", paymentID), zap.Error(err))
		respondError(c, mapCheckoutError(err))
		return
	}
	h.logger.Info("checkout success", zap.String("record_id", paymentID),
		zap.String("provider_payment_id", result.ProviderPaymentID), zap.String("provider_status", result.ProviderStatus))
	c.JSON(http.StatusOK, response.FromCheckout(result))
}

func mapPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotATenant):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Portal is only available to tenants", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoActiveRental):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_RENTAL", "Tenant has no active rental", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyPrompt):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Description is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return invalidRequest()
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is not pending", http.StatusConflict)
	default:
		return mapTransitionError(err)
	}
}
