package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
	"gestorpro/pkg"
)

type SettingsHandler struct {
	usecase usecase.ISettings
}

func NewSettingsHandler(uc usecase.ISettings) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	settings, err := h.usecase.Get(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	settings, err := h.usecase.Update(c.Request.Context(), actor, entities.OrganizationSettings{
		GeminiAPIKey:       req.GeminiAPIKey,
		ManagerPhoneNumber: req.ManagerPhoneNumber,
	})
	if err != nil {
		respondError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSettingsForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role cannot edit settings", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NOT_FOUND", "Organization not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
