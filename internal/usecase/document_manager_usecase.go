package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmptyUpload      = errors.New("no file uploaded")
)

// IDocumentManager keeps files attached to records: free-form documents on any
// schema collection and the service receipts of a tenant.
type IDocumentManager interface {
	ListDocuments(ctx context.Context, actor entities.Actor, collection, parentID string) ([]entities.Document, error)
	UploadDocument(ctx context.Context, actor entities.Actor, collection, parentID string, upload entities.Upload) (entities.Document, error)
	DeleteDocument(ctx context.Context, actor entities.Actor, collection, parentID, documentID string, confirmer interfaces.IConfirmer) (bool, error)
	ListServiceReceipts(ctx context.Context, actor entities.Actor, tenantID string) ([]entities.Document, error)
	UploadServiceReceipt(ctx context.Context, actor entities.Actor, tenantID string, upload entities.Upload) (entities.Document, error)
}

type DocumentManager struct {
	store   interfaces.IRecordStore
	storage interfaces.IObjectStorage
	audit   IAuditLogger
	logger  *zap.Logger
	now     func() time.Time
}

var _ IDocumentManager = (*DocumentManager)(nil)

func NewDocumentManager(store interfaces.IRecordStore, storage interfaces.IObjectStorage, audit IAuditLogger, logger *zap.Logger) *DocumentManager {
	return &DocumentManager{
		store:   store,
		storage: storage,
		audit:   audit,
		logger:  logging.OrNop(logger).Named("documents"),
		now:     time.Now,
	}
}

func (u *DocumentManager) ListDocuments(ctx context.Context, actor entities.Actor, collection, parentID string) ([]entities.Document, error) {
	parentID, err := u.parent(ctx, actor.OrgID, collection, parentID)
	if err != nil {
		return nil, err
	}
	return u.store.List(ctx, actor.OrgID, entities.ChildCollection(collection, parentID, entities.SubcollectionDocuments),
		entities.Query{OrderBy: "createdAt", Descending: true})
}

func (u *DocumentManager) UploadDocument(ctx context.Context, actor entities.Actor, collection, parentID string, upload entities.Upload) (entities.Document, error) {
	parentID, err := u.parent(ctx, actor.OrgID, collection, parentID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	objectPath := fmt.Sprintf("documents/%s/%s/%d_%s", collection, parentID, now.UnixMilli(), cleanName(upload.Name))
	meta, err := u.put(ctx, objectPath, upload, now)
	if err != nil {
		return nil, err
	}

	created, err := u.store.Create(ctx, actor.OrgID, entities.ChildCollection(collection, parentID, entities.SubcollectionDocuments), meta)
	if err != nil {
		u.logger.Error("document metadata write failed", zap.String("org_id", actor.OrgID), zap.String("path", objectPath), zap.Error(err))
		return nil, err
	}
	u.audit.Log(ctx, actor, "UPLOAD_DOCUMENT", collection, map[string]any{
		"parentId": parentID,
		"document": withoutID(meta),
	})
	return created, nil
}

// DeleteDocument removes the blob first and then its metadata. When the blob is
// already gone the metadata is still removed and the entry says why.
func (u *DocumentManager) DeleteDocument(ctx context.Context, actor entities.Actor, collection, parentID, documentID string, confirmer interfaces.IConfirmer) (bool, error) {
	parentID, err := u.parent(ctx, actor.OrgID, collection, parentID)
	if err != nil {
		return false, err
	}
	docsPath := entities.ChildCollection(collection, parentID, entities.SubcollectionDocuments)
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return false, ErrDocumentNotFound
	}
	meta, err := u.store.Get(ctx, actor.OrgID, docsPath, documentID)
	if err != nil {
		return false, err
	}
	if meta == nil {
		return false, ErrDocumentNotFound
	}
	name := meta.String("name")

	confirmed, err := confirmer.Confirm(ctx, entities.ConfirmationPrompt{
		Title:       "Confirmar Eliminación",
		Message:     fmt.Sprintf("¿Seguro que quieres eliminar \"%s\"?", name),
		ConfirmText: "Sí, eliminar",
		Collection:  docsPath,
		RecordID:    documentID,
	})
	if err != nil || !confirmed {
		return false, err
	}
	if u.storage == nil {
		return false, errors.New("object storage not configured")
	}

	action := "DELETE_DOCUMENT"
	details := map[string]any{"parentId": parentID, "documentName": name}
	if err := u.storage.Delete(ctx, meta.String("path")); err != nil {
		if !errors.Is(err, interfaces.ErrObjectNotFound) {
			u.logger.Error("blob delete failed", zap.String("org_id", actor.OrgID), zap.String("path", meta.String("path")), zap.Error(err))
			return false, err
		}
		action = "DELETE_DOCUMENT_RECORD"
		details["reason"] = "Archivo no encontrado en Storage."
	}
	if err := u.store.Delete(ctx, actor.OrgID, docsPath, documentID); err != nil {
		return false, err
	}
	u.audit.Log(ctx, actor, action, collection, details)
	return true, nil
}

func (u *DocumentManager) ListServiceReceipts(ctx context.Context, actor entities.Actor, tenantID string) ([]entities.Document, error) {
	tenantID, err := u.tenant(ctx, actor.OrgID, tenantID)
	if err != nil {
		return nil, err
	}
	return u.store.List(ctx, actor.OrgID, entities.ChildCollection(entities.CollectionTenants, tenantID, entities.SubcollectionServiceReceipts),
		entities.Query{OrderBy: "createdAt", Descending: true})
}

func (u *DocumentManager) UploadServiceReceipt(ctx context.Context, actor entities.Actor, tenantID string, upload entities.Upload) (entities.Document, error) {
	tenantID, err := u.tenant(ctx, actor.OrgID, tenantID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	objectPath := fmt.Sprintf("serviceReceipts/%s/%d_%s", tenantID, now.UnixMilli(), cleanName(upload.Name))
	meta, err := u.put(ctx, objectPath, upload, now)
	if err != nil {
		return nil, err
	}
	meta["uploadedBy"] = actor.Email

	created, err := u.store.Create(ctx, actor.OrgID, entities.ChildCollection(entities.CollectionTenants, tenantID, entities.SubcollectionServiceReceipts), meta)
	if err != nil {
		return nil, err
	}
	u.audit.Log(ctx, actor, "UPLOAD_SERVICE_RECEIPT", schema.Tenants.Title, map[string]any{
		"tenantId":     tenantID,
		"documentName": meta.String("name"),
	})
	return created, nil
}

func (u *DocumentManager) put(ctx context.Context, objectPath string, upload entities.Upload, now time.Time) (entities.Document, error) {
	if strings.TrimSpace(upload.Name) == "" || upload.Body == nil {
		return nil, ErrEmptyUpload
	}
	if u.storage == nil {
		return nil, errors.New("object storage not configured")
	}
	url, err := u.storage.Put(ctx, objectPath, upload)
	if err != nil {
		u.logger.Error("upload failed", zap.String("path", objectPath), zap.Error(err))
		return nil, err
	}
	return entities.Document{
		"name":      upload.Name,
		"url":       url,
		"path":      objectPath,
		"createdAt": dates.Stamp(now),
	}, nil
}

func (u *DocumentManager) parent(ctx context.Context, orgID, collection, id string) (string, error) {
	if _, ok := schema.For(collection); !ok {
		return "", ErrUnknownCollection
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrRecordNotFound
	}
	doc, err := u.store.Get(ctx, orgID, collection, id)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", ErrRecordNotFound
	}
	return id, nil
}

func (u *DocumentManager) tenant(ctx context.Context, orgID, id string) (string, error) {
	id, err := u.parent(ctx, orgID, entities.CollectionTenants, id)
	if errors.Is(err, ErrRecordNotFound) {
		return "", ErrTenantNotFound
	}
	return id, err
}

// cleanName keeps only the base name so uploads cannot escape their folder.
func cleanName(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "." || base == "/" {
		return "file"
	}
	return base
}
