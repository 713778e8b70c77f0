package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
	"gestorpro/pkg"
)

// StatusHandler advances payment and expense statuses.
type StatusHandler struct {
	usecase usecase.IStatusTransitions
}

func NewStatusHandler(uc usecase.IStatusTransitions) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// AdvancePayment godoc
// @Summary   Move a payment to Pagado or Verificado
// @Tags      payments
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     id    path      string                 true  "Payment id"
// @Param     body  body      request.StatusRequest  true  "Target status"
// @Success   200   {object}  response.TransitionResponse
// @Failure   409   {object}  pkg.HTTPError
// @Router    /payments/{id}/status [patch]
func (h *StatusHandler) AdvancePayment(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.AdvancePayment(c.Request.Context(), actor, c.Param("id"), entities.PaymentStatus(req.Status))
	if err != nil {
		respondError(c, mapTransitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(result))
}

func (h *StatusHandler) AdvanceExpense(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.AdvanceExpense(c.Request.Context(), actor, c.Param("id"), entities.ExpenseStatus(req.Status))
	if err != nil {
		respondError(c, mapTransitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(result))
}

func mapTransitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status cannot move backwards or skip a step", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role cannot perform this status transition", http.StatusForbidden)
	default:
		return internalError(err)
	}
}
