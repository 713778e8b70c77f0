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

// DocumentHandler serves per-record documents, tenant service receipts and
// the contracts generated for a rental.
type DocumentHandler struct {
	documents usecase.IDocumentManager
	contracts usecase.IContractManager
	sessions  ISessionRegistry
	logger    *zap.Logger
}

func NewDocumentHandler(documents usecase.IDocumentManager, contracts usecase.IContractManager, sessions ISessionRegistry, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		contracts: contracts,
		sessions:  sessions,
		logger:    logging.OrNop(logger).Named("document_handler"),
	}
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	docs, err := h.documents.ListDocuments(c.Request.Context(), actor, c.Param("collection"), c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	upload, closer, err := readSingleUpload(c)
	if err != nil {
		respondError(c, mapDocumentError(usecase.ErrEmptyUpload))
		return
	}
	defer closer.Close()

	doc, err := h.documents.UploadDocument(c.Request.Context(), actor, c.Param("collection"), c.Param("id"), upload)
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	collection, parentID, docID := c.Param("collection"), c.Param("id"), c.Param("docId")
	confirmedDelete(c, h.sessions, actor, h.logger, mapDocumentError, func(ctx context.Context, confirmer interfaces.IConfirmer) (bool, error) {
		return h.documents.DeleteDocument(ctx, actor, collection, parentID, docID, confirmer)
	})
}

func (h *DocumentHandler) ListReceipts(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	docs, err := h.documents.ListServiceReceipts(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) UploadReceipt(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	h.uploadReceipt(c, c.Param("id"), actor)
}

// UploadOwnReceipt is the portal variant: the tenant record comes from the session.
func (h *DocumentHandler) UploadOwnReceipt(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	h.uploadReceipt(c, actor.TenantDocID, actor)
}

func (h *DocumentHandler) uploadReceipt(c *gin.Context, tenantID string, actor entities.Actor) {
	upload, closer, err := readSingleUpload(c)
	if err != nil {
		respondError(c, mapDocumentError(usecase.ErrEmptyUpload))
		return
	}
	defer closer.Close()

	doc, err := h.documents.UploadServiceReceipt(c.Request.Context(), actor, tenantID, upload)
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) ListContracts(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	docs, err := h.contracts.List(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, docs)
}

// SaveContract stores an AI-drafted contract under the rental.
func (h *DocumentHandler) SaveContract(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req request.SaveContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}
	doc, err := h.contracts.Save(c.Request.Context(), actor, req.TemplateID, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) DeleteContract(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	rentalID, contractID := c.Param("id"), c.Param("contractId")
	confirmedDelete(c, h.sessions, actor, h.logger, mapDocumentError, func(ctx context.Context, confirmer interfaces.IConfirmer) (bool, error) {
		return h.contracts.Delete(ctx, actor, rentalID, contractID, confirmer)
	})
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyUpload):
		return pkg.NewDomainErrorSimple("EMPTY_UPLOAD", "No file uploaded", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Contract template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRentalNotFound):
		return pkg.NewDomainErrorSimple("RENTAL_NOT_FOUND", "Rental not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRentalNotActive):
		return pkg.NewDomainErrorSimple("RENTAL_NOT_ACTIVE", "Rental is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrGeneratedContractMissing):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Generated contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyContract):
		return pkg.NewDomainErrorSimple("EMPTY_CONTRACT", "Generated contract has no content", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return mapRecordError(err)
	}
}
