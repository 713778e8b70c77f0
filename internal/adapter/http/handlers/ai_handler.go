package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/usecase"
	"gestorpro/pkg"
)

// AIHandler exposes the assistant prompts. Generation failures are part of the
// 200 body (ok=false with a message); only bad input and store errors are HTTP errors.
type AIHandler struct {
	usecase usecase.IAIAssistant
}

func NewAIHandler(uc usecase.IAIAssistant) *AIHandler {
	return &AIHandler{usecase: uc}
}

func (h *AIHandler) Insights(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	result, err := h.usecase.Insights(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) TriageMaintenance(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	suggestion, result, err := h.usecase.TriageMaintenance(c.Request.Context(), actor, req.Description)
	if err != nil {
		respondError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, response.TriageResponse{Suggestion: suggestion, Result: result})
}

func (h *AIHandler) Copilot(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.CopilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.Copilot(c.Request.Context(), actor, req.Task, req.Text)
	if err != nil {
		respondError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// DraftContract fills a contract template for one rental.
func (h *AIHandler) DraftContract(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.DraftContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.DraftContract(c.Request.Context(), actor, c.Param("id"), req.RentalID)
	if err != nil {
		respondError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) TenantChat(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.TenantChat(c.Request.Context(), actor, req.Question)
	if err != nil {
		respondError(c, mapAIError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapAIError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyPrompt):
		return pkg.NewDomainErrorSimple("EMPTY_PROMPT", "Prompt text is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCopilotTask):
		return pkg.NewDomainErrorSimple("UNKNOWN_TASK", "Unknown copilot task", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NOT_FOUND", "Organization not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveRental):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_RENTAL", "Tenant has no active rental", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotATenant):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Portal is only available to tenants", http.StatusForbidden)
	default:
		return mapDocumentError(err)
	}
}
