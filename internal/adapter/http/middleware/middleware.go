// Package middleware holds the gin middleware shared by every /v1 route.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
	"gestorpro/pkg"
)

const (
	RequestIDHeader = "X-Request-ID"

	actorKey     = "actor"
	requestIDKey = "request_id"
)

// SessionLookup reports whether a login session is still open.
type SessionLookup interface {
	Active(sessionID string) bool
}

// RequestID reuses the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logging writes one access log line per request.
func Logging(logger *zap.Logger) gin.HandlerFunc {
	logger = logging.OrNop(logger).Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("client_ip", c.ClientIP()),
		}
		if actor, ok := ActorFrom(c); ok {
			fields = append(fields, zap.String("org_id", actor.OrgID), zap.String("user_id", actor.UserID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("err", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// Metrics observes every request under its route template, not the raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	logger = logging.OrNop(logger).Named("http")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

// Authenticate resolves the bearer token into an actor. Browsers cannot set
// headers on an EventSource, so the token is also accepted as access_token.
func Authenticate(tokens interfaces.ITokenIssuer, sessions SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
			return
		}
		actor, err := tokens.Parse(raw)
		if err != nil {
			abort(c, pkg.NewDomainError("UNAUTHORIZED", "Invalid or expired token", err, http.StatusUnauthorized))
			return
		}
		if sessions != nil && !sessions.Active(actor.SessionID) {
			abort(c, pkg.NewDomainErrorSimple("SESSION_CLOSED", "Session is closed, log in again", http.StatusUnauthorized))
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// Require rejects actors whose role grants none of actions.
func Require(actions ...rbac.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
			return
		}
		for _, action := range actions {
			if rbac.Can(actor.Role, action) {
				c.Next()
				return
			}
		}
		abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Role is not allowed to perform this action", http.StatusForbidden))
	}
}

// SetActor is used by tests that mount handlers without Authenticate.
func SetActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return c.Query("access_token")
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
