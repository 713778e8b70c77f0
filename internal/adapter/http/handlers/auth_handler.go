package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase"
	"gestorpro/internal/usecase/interfaces"
	"gestorpro/pkg"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	usecase usecase.IAuth
	logger  *zap.Logger
}

func NewAuthHandler(uc usecase.IAuth, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: logging.OrNop(logger).Named("auth_handler")}
}

// Register godoc
// @Summary      Register an organization
// @Description  Creates the organization, its first Admin and opens a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterRequest  true  "Registration"
// @Success      201   {object}  response.LoginResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.Register(c.Request.Context(), req.OrganizationName, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("register failed", zap.Error(err))
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLoginResult(result))
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.LoginResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	result, err := h.usecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLoginResult(result))
}

// Logout godoc
// @Summary   Close the current session
// @Tags      auth
// @Security  Bearer
// @Success   204
// @Router    /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	h.usecase.Logout(c.Request.Context(), actor)
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRegistrationIncomplete):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Organization name, email and password are required", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrEmailAlreadyInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "Email already in use", http.StatusConflict)
	case errors.Is(err, interfaces.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "User profile not found", http.StatusForbidden)
	default:
		return internalError(err)
	}
}
