package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase"
	"gestorpro/internal/usecase/interfaces"
	"gestorpro/pkg"
)

// RecordHandler serves the schema-driven CRUD of every editable collection.
type RecordHandler struct {
	usecase  usecase.IRecordManager
	sessions ISessionRegistry
	logger   *zap.Logger
}

func NewRecordHandler(uc usecase.IRecordManager, sessions ISessionRegistry, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{usecase: uc, sessions: sessions, logger: logging.OrNop(logger).Named("record_handler")}
}

// List godoc
// @Summary   List the records of a collection
// @Tags      records
// @Security  Bearer
// @Produce   json
// @Param     collection  path      string  true  "Collection name"
// @Success   200         {array}   object
// @Failure   404         {object}  pkg.HTTPError
// @Router    /records/{collection} [get]
func (h *RecordHandler) List(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	docs, err := h.usecase.List(c.Request.Context(), actor, c.Param("collection"))
	if err != nil {
		respondError(c, mapRecordError(err))
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *RecordHandler) Get(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	doc, err := h.usecase.Get(c.Request.Context(), actor, c.Param("collection"), c.Param("id"))
	if err != nil {
		respondError(c, mapRecordError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Form describes the edit form of a collection, with reference options taken
// from the session view. ?id= pre-fills the values of an existing record.
func (h *RecordHandler) Form(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	collection := c.Param("collection")
	s, found := schema.For(collection)
	if !found {
		respondError(c, mapRecordError(usecase.ErrUnknownCollection))
		return
	}
	sess, ok := sessionOf(c, h.sessions, actor)
	if !ok {
		return
	}

	var current entities.Document
	if id := c.Query("id"); id != "" {
		doc, err := h.usecase.Get(c.Request.Context(), actor, collection, id)
		if err != nil {
			respondError(c, mapRecordError(err))
			return
		}
		current = doc
	}
	c.JSON(http.StatusOK, gin.H{"title": s.Title, "fields": s.Form(current, sess.View)})
}

// Table renders the collection with resolved references and formatted cells.
func (h *RecordHandler) Table(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	collection := c.Param("collection")
	s, found := schema.For(collection)
	if !found {
		respondError(c, mapRecordError(usecase.ErrUnknownCollection))
		return
	}
	sess, ok := sessionOf(c, h.sessions, actor)
	if !ok {
		return
	}
	docs, err := h.usecase.List(c.Request.Context(), actor, collection)
	if err != nil {
		respondError(c, mapRecordError(err))
		return
	}
	c.JSON(http.StatusOK, s.Table(docs, sess.View))
}

// Create godoc
// @Summary   Create a record
// @Tags      records
// @Security  Bearer
// @Accept    json,mpfd
// @Produce   json
// @Param     collection  path      string  true  "Collection name"
// @Success   201         {object}  object
// @Failure   422         {object}  pkg.HTTPError
// @Router    /records/{collection} [post]
func (h *RecordHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	payload, err := readFormPayload(c)
	if err != nil {
		respondError(c, invalidRequest())
		return
	}
	defer payload.Close()

	created, err := h.usecase.Create(c.Request.Context(), actor, c.Param("collection"), payload.input, payload.uploads)
	if err != nil {
		respondError(c, mapRecordError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RecordHandler) Update(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	payload, err := readFormPayload(c)
	if err != nil {
		respondError(c, invalidRequest())
		return
	}
	defer payload.Close()

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("collection"), c.Param("id"), payload.input, payload.uploads)
	if err != nil {
		respondError(c, mapRecordError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a record
// @Description  Returns 202 with a confirmation id; the deletion runs once the
// @Description  prompt is confirmed on POST /confirmations/{id}.
// @Tags         records
// @Security     Bearer
// @Produce      json
// @Param        collection  path      string  true  "Collection name"
// @Param        id          path      string  true  "Record id"
// @Success      202         {object}  response.ConfirmationResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /records/{collection}/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	collection, id := c.Param("collection"), c.Param("id")
	confirmedDelete(c, h.sessions, actor, h.logger, mapRecordError, func(ctx context.Context, confirmer interfaces.IConfirmer) (bool, error) {
		return h.usecase.Delete(ctx, actor, collection, id, confirmer)
	})
}

// CreateTenantAccess provisions portal credentials for a tenant record.
func (h *RecordHandler) CreateTenantAccess(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	tenant, err := h.usecase.CreateTenantAccess(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapRecordError(err))
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

func mapRecordError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainErrorSimple("COLLECTION_NOT_FOUND", "Collection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReferenceNotFound):
		return pkg.NewDomainError("REFERENCE_NOT_FOUND", "Referenced record not found", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttachmentsNotSupported):
		return pkg.NewDomainErrorSimple("ATTACHMENTS_NOT_SUPPORTED", "Collection does not accept attachments", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantAccessIncomplete):
		return pkg.NewDomainErrorSimple("TENANT_ACCESS_INCOMPLETE", "Tenant needs email and DNI for portal access", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTenantAccessExists):
		return pkg.NewDomainErrorSimple("TENANT_ACCESS_EXISTS", "Tenant already has portal access", http.StatusConflict)
	case errors.Is(err, interfaces.ErrEmailAlreadyInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "Email already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyUpload):
		return pkg.NewDomainErrorSimple("EMPTY_UPLOAD", "No file uploaded", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
