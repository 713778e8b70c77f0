package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase"
	"gestorpro/internal/usecase/interfaces"
	"gestorpro/pkg"
)

// TeamHandler manages staff accounts of the organization.
type TeamHandler struct {
	usecase  usecase.ITeam
	sessions ISessionRegistry
	logger   *zap.Logger
}

func NewTeamHandler(uc usecase.ITeam, sessions ISessionRegistry, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{usecase: uc, sessions: sessions, logger: logging.OrNop(logger).Named("team_handler")}
}

func (h *TeamHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	users, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *TeamHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	user, err := h.usecase.Create(c.Request.Context(), actor, req.Email, req.DNI, entities.Role(req.Role))
	if err != nil {
		respondError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *TeamHandler) UpdateRole(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	user, err := h.usecase.UpdateRole(c.Request.Context(), actor, c.Param("uid"), entities.Role(req.Role))
	if err != nil {
		respondError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	uid := c.Param("uid")
	confirmedDelete(c, h.sessions, actor, h.logger, mapTeamError, func(ctx context.Context, confirmer interfaces.IConfirmer) (bool, error) {
		return h.usecase.Delete(ctx, actor, uid, confirmer)
	})
}

func mapTeamError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAdminOnly):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only administrators can manage the team", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTeamFieldsRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Email, DNI and role are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTeamRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Role cannot be assigned to a team member", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Team member not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCannotModifySelf):
		return pkg.NewDomainErrorSimple("CANNOT_MODIFY_SELF", "Administrators cannot modify their own profile", http.StatusConflict)
	case errors.Is(err, interfaces.ErrEmailAlreadyInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "Email already in use", http.StatusConflict)
	default:
		return internalError(err)
	}
}
