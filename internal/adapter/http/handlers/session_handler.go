package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/http/dto/request"
	"gestorpro/internal/logging"
	"gestorpro/internal/session"
)

const (
	eventBuffer       = 32
	keepAliveInterval = 25 * time.Second
)

// SessionHandler exposes the per-login view, toasts and event stream.
type SessionHandler struct {
	sessions ISessionRegistry
	logger   *zap.Logger
}

func NewSessionHandler(sessions ISessionRegistry, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logging.OrNop(logger).Named("session_handler")}
}

// View godoc
// @Summary   Current snapshot of the organization's collections
// @Tags      session
// @Security  Bearer
// @Produce   json
// @Success   200  {object}  session.View
// @Router    /session/view [get]
func (h *SessionHandler) View(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	s, ok := sessionOf(c, h.sessions, actor)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.View.View())
}

func (h *SessionHandler) Toasts(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	s, ok := sessionOf(c, h.sessions, actor)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Events.Active())
}

// Events streams toast, confirmation and snapshot events as Server-Sent Events
// until the client disconnects or the session closes.
func (h *SessionHandler) Events(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	s, ok := sessionOf(c, h.sessions, actor)
	if !ok {
		return
	}
	events, cancel := s.Events.Subscribe(eventBuffer)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	for _, t := range s.Events.Active() {
		c.SSEvent(session.EventToast, t)
	}
	c.Writer.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	for open := true; open; {
		select {
		case e, ok := <-events:
			if !ok {
				open = false
				continue
			}
			c.SSEvent(e.Type, e.Data)
		case <-keepAlive.C:
			_, _ = io.WriteString(c.Writer, ": keep-alive\n\n")
		case <-c.Request.Context().Done():
			open = false
			continue
		}
		c.Writer.Flush()
	}
	h.logger.Debug("event stream closed", zap.String("session_id", actor.SessionID))
}

// Answer godoc
// @Summary   Answer a pending confirmation
// @Tags      session
// @Security  Bearer
// @Accept    json
// @Param     id    path  string                      true  "Confirmation id"
// @Param     body  body  request.ConfirmationAnswer  true  "Answer"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Router    /confirmations/{id} [post]
func (h *SessionHandler) Answer(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.ConfirmationAnswer
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	if err := h.sessions.Answer(actor.SessionID, c.Param("id"), *req.Confirmed); err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
