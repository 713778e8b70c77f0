package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/adapter/http/middleware"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/session"
	"gestorpro/internal/usecase/interfaces"
	"gestorpro/pkg"
)

const (
	uploadField    = "files"
	maxUploadBytes = 32 << 20
)

// ISessionRegistry is the part of the session registry the handlers use.
type ISessionRegistry interface {
	Get(sessionID string) (*session.Session, bool)
	Confirmer(sessionID string) (*session.Pending, error)
	Answer(sessionID, requestID string, confirmed bool) error
	Toast(sessionID, title, message string)
}

var _ ISessionRegistry = (*session.Registry)(nil)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// actorOf reads the actor set by the auth middleware; routes without it are a wiring bug.
func actorOf(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
	}
	return actor, ok
}

func sessionOf(c *gin.Context, sessions ISessionRegistry, actor entities.Actor) (*session.Session, bool) {
	s, ok := sessions.Get(actor.SessionID)
	if !ok {
		respondError(c, mapSessionError(session.ErrSessionNotFound))
	}
	return s, ok
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_CLOSED", "Session is closed, log in again", http.StatusUnauthorized)
	case errors.Is(err, session.ErrUnknownRequest):
		return pkg.NewDomainErrorSimple("CONFIRMATION_NOT_FOUND", "Confirmation not found or expired", http.StatusNotFound)
	case errors.Is(err, session.ErrForeignRequest):
		return pkg.NewDomainErrorSimple("CONFIRMATION_FORBIDDEN", "Confirmation belongs to another session", http.StatusForbidden)
	default:
		return internalError(err)
	}
}

func mapValidationError(err error) (*pkg.AppError, bool) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewDomainError("VALIDATION_FAILED", "Some fields are missing or invalid", err, http.StatusUnprocessableEntity).WithFields(verr.Fields), true
	}
	return nil, false
}

type deletion struct {
	deleted bool
	err     error
}

// confirmedDelete runs a destructive use case whose confirmation prompt is answered
// on another request. When the use case asks, the caller gets 202 with the
// confirmation id and the outcome is reported later as a toast on the session.
// When it finishes without asking (not found, validation) the result is returned directly.
func confirmedDelete(c *gin.Context, sessions ISessionRegistry, actor entities.Actor, logger *zap.Logger, mapErr func(error) *pkg.AppError, run func(ctx context.Context, confirmer interfaces.IConfirmer) (bool, error)) {
	pending, err := sessions.Confirmer(actor.SessionID)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	done := make(chan deletion, 1)
	go func() {
		deleted, err := run(ctx, pending)
		done <- deletion{deleted: deleted, err: err}
	}()

	select {
	case <-pending.Asked():
		req := pending.Request()
		go reportDeletion(sessions, actor, logger, mapErr, done)
		c.JSON(http.StatusAccepted, response.FromConfirmationRequest(req))
	case out := <-done:
		pending.Release()
		if out.err != nil {
			respondError(c, mapErr(out.err))
			return
		}
		c.JSON(http.StatusOK, response.DeleteResponse{Deleted: out.deleted})
	}
}

func reportDeletion(sessions ISessionRegistry, actor entities.Actor, logger *zap.Logger, mapErr func(error) *pkg.AppError, done <-chan deletion) {
	out := <-done
	switch {
	case out.err != nil:
		logger.Warn("confirmed delete failed", zap.String("org_id", actor.OrgID), zap.Error(out.err))
		sessions.Toast(actor.SessionID, "No se pudo eliminar", mapErr(out.err).Message)
	case out.deleted:
		sessions.Toast(actor.SessionID, "Eliminado", "El registro se eliminó correctamente.")
	}
}

type formPayload struct {
	input   map[string]any
	uploads []entities.Upload
	closers []io.Closer
}

func (p formPayload) Close() {
	for _, c := range p.closers {
		_ = c.Close()
	}
}

// readFormPayload accepts either a JSON object or a multipart form whose files
// travel under "files".
func readFormPayload(c *gin.Context) (formPayload, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil {
			return formPayload{}, err
		}
		return formPayload{input: input}, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return formPayload{}, err
	}
	out := formPayload{input: make(map[string]any, len(form.Value))}
	for key, values := range form.Value {
		if len(values) > 0 {
			out.input[key] = values[0]
		}
	}
	for _, fh := range form.File[uploadField] {
		up, closer, err := openUpload(fh)
		if err != nil {
			out.Close()
			return formPayload{}, err
		}
		out.uploads = append(out.uploads, up)
		out.closers = append(out.closers, closer)
	}
	return out, nil
}

// readSingleUpload reads the one file a document or receipt upload carries.
func readSingleUpload(c *gin.Context) (entities.Upload, io.Closer, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return entities.Upload{}, nil, err
	}
	return openUpload(fh)
}

func openUpload(fh *multipart.FileHeader) (entities.Upload, io.Closer, error) {
	if fh.Size > maxUploadBytes {
		return entities.Upload{}, nil, fmt.Errorf("%s exceeds %d bytes", fh.Filename, maxUploadBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return entities.Upload{}, nil, err
	}
	return entities.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}
