package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/usecase"
	"gestorpro/internal/usecase/interfaces"
	"gestorpro/pkg"
)

// IntegrationHandler exposes the national id lookup and manual WhatsApp messages.
type IntegrationHandler struct {
	usecase usecase.IIntegrations
}

func NewIntegrationHandler(uc usecase.IIntegrations) *IntegrationHandler {
	return &IntegrationHandler{usecase: uc}
}

func (h *IntegrationHandler) LookupDNI(c *gin.Context) {
	var req request.DNIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	name, err := h.usecase.LookupDNI(c.Request.Context(), req.DNI)
	if err != nil {
		respondError(c, mapIntegrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.NameResponse{FullName: name})
}

func (h *IntegrationHandler) SendWhatsApp(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.WhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	if err := h.usecase.SendWhatsApp(c.Request.Context(), actor, req.PhoneNumber, req.Message); err != nil {
		respondError(c, mapIntegrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.SentResponse{Sent: true})
}

func mapIntegrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDNI):
		return pkg.NewDomainErrorSimple("INVALID_DNI", "DNI must have 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWhatsAppFieldsRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Phone number and message are required", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrNationalIDNotFound):
		return pkg.NewDomainErrorSimple("DNI_NOT_FOUND", "No data found for this DNI", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrNationalIDNotConfigured), errors.Is(err, interfaces.ErrMessagingNotConfigured):
		return pkg.NewDomainError("NOT_CONFIGURED", "Integration is not configured on the server", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTEGRATION_FAILED", "The external service could not be reached", err, http.StatusBadGateway)
	}
}
