package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrUnknownCollection       = errors.New("unknown collection")
	ErrRecordNotFound          = errors.New("record not found")
	ErrReferenceNotFound       = errors.New("referenced record not found")
	ErrAttachmentsNotSupported = errors.New("collection does not accept attachments")
	ErrTenantNotFound          = errors.New("tenant not found")
	ErrTenantAccessIncomplete  = errors.New("tenant needs email and dni for portal access")
	ErrTenantAccessExists      = errors.New("tenant already has portal access")
)

// IRecordManager is the generic create/list/edit/delete path shared by every
// schema-described collection. Every successful mutation writes one audit entry.
type IRecordManager interface {
	List(ctx context.Context, actor entities.Actor, collection string) ([]entities.Document, error)
	Get(ctx context.Context, actor entities.Actor, collection, id string) (entities.Document, error)
	Create(ctx context.Context, actor entities.Actor, collection string, input map[string]any, uploads []entities.Upload) (entities.Document, error)
	Update(ctx context.Context, actor entities.Actor, collection, id string, input map[string]any, uploads []entities.Upload) (entities.Document, error)
	Delete(ctx context.Context, actor entities.Actor, collection, id string, confirmer interfaces.IConfirmer) (bool, error)
	CreateTenantAccess(ctx context.Context, actor entities.Actor, tenantID string) (entities.Document, error)
}

type RecordManager struct {
	store    interfaces.IRecordStore
	storage  interfaces.IObjectStorage
	identity interfaces.IIdentityProvider
	users    interfaces.IUserRepository
	audit    IAuditLogger
	logger   *zap.Logger
	now      func() time.Time
}

var _ IRecordManager = (*RecordManager)(nil)

func NewRecordManager(store interfaces.IRecordStore, storage interfaces.IObjectStorage, identity interfaces.IIdentityProvider, users interfaces.IUserRepository, audit IAuditLogger, logger *zap.Logger) *RecordManager {
	return &RecordManager{
		store:    store,
		storage:  storage,
		identity: identity,
		users:    users,
		audit:    audit,
		logger:   logging.OrNop(logger).Named("records"),
		now:      time.Now,
	}
}

func (u *RecordManager) List(ctx context.Context, actor entities.Actor, collection string) ([]entities.Document, error) {
	if _, ok := schema.For(collection); !ok {
		return nil, ErrUnknownCollection
	}
	return u.store.List(ctx, actor.OrgID, collection, entities.Query{})
}

func (u *RecordManager) Get(ctx context.Context, actor entities.Actor, collection, id string) (entities.Document, error) {
	if _, ok := schema.For(collection); !ok {
		return nil, ErrUnknownCollection
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrRecordNotFound
	}
	doc, err := u.store.Get(ctx, actor.OrgID, collection, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrRecordNotFound
	}
	return doc, nil
}

func (u *RecordManager) Create(ctx context.Context, actor entities.Actor, collection string, input map[string]any, uploads []entities.Upload) (entities.Document, error) {
	s, ok := schema.For(collection)
	if !ok {
		return nil, ErrUnknownCollection
	}
	u.logger.Debug("create start", zap.String("org_id", actor.OrgID), zap.String("collection", collection))

	doc, err := s.Decode(input)
	if err != nil {
		return nil, err
	}
	if err := u.resolveReferences(ctx, actor.OrgID, s, doc); err != nil {
		return nil, err
	}

	now := u.now()
	if photo, ok := s.PhotoField(); ok {
		urls, err := u.uploadAttachments(ctx, s, strconv.FormatInt(now.UnixMilli(), 10), uploads)
		if err != nil {
			return nil, err
		}
		doc[photo.Name] = urls
	} else if len(uploads) > 0 {
		return nil, ErrAttachmentsNotSupported
	}

	for k, v := range s.CreateOverrides {
		doc[k] = v
	}
	doc["orgId"] = actor.OrgID
	doc["createdAt"] = dates.Stamp(now)
	doc["createdBy"] = actor.Email
	doc[entities.FieldID] = uuid.NewString()

	created, err := u.store.Create(ctx, actor.OrgID, collection, doc)
	if err != nil {
		u.logger.Error("create failed", zap.String("org_id", actor.OrgID), zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	u.logger.Info("create success", zap.String("org_id", actor.OrgID), zap.String("collection", collection), zap.String("record_id", created.ID()))

	u.audit.Log(ctx, actor, s.Action("CREATE"), s.Title, map[string]any{
		"docId": created.ID(),
		"data":  withoutID(created),
	})
	return created, nil
}

func (u *RecordManager) Update(ctx context.Context, actor entities.Actor, collection, id string, input map[string]any, uploads []entities.Upload) (entities.Document, error) {
	s, ok := schema.For(collection)
	if !ok {
		return nil, ErrUnknownCollection
	}
	before, err := u.Get(ctx, actor, collection, id)
	if err != nil {
		return nil, err
	}
	id = before.ID()

	doc, err := s.DecodePatch(input)
	if err != nil {
		return nil, err
	}
	if err := u.resolveReferences(ctx, actor.OrgID, s, doc); err != nil {
		return nil, err
	}

	if photo, ok := s.PhotoField(); ok {
		urls, err := u.uploadAttachments(ctx, s, id, uploads)
		if err != nil {
			return nil, err
		}
		doc[photo.Name] = append(before.Strings(photo.Name), urls...)
	} else if len(uploads) > 0 {
		return nil, ErrAttachmentsNotSupported
	}

	doc["updatedAt"] = dates.Stamp(u.now())
	doc["updatedBy"] = actor.Email

	after, err := u.store.Update(ctx, actor.OrgID, collection, id, doc)
	if err != nil {
		u.logger.Error("update failed", zap.String("org_id", actor.OrgID), zap.String("collection", collection), zap.String("record_id", id), zap.Error(err))
		return nil, err
	}
	if after == nil {
		return nil, ErrRecordNotFound
	}

	u.audit.Log(ctx, actor, s.Action("UPDATE"), s.Title, map[string]any{
		"docId":  id,
		"before": withoutID(before),
		"after":  withoutID(after),
	})
	return after, nil
}

// Delete asks for confirmation first; an unconfirmed delete changes nothing and
// writes no audit entry. The pre-image is read best-effort for the audit payload.
func (u *RecordManager) Delete(ctx context.Context, actor entities.Actor, collection, id string, confirmer interfaces.IConfirmer) (bool, error) {
	s, ok := schema.For(collection)
	if !ok {
		return false, ErrUnknownCollection
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrRecordNotFound
	}

	confirmed, err := confirmer.Confirm(ctx, entities.ConfirmationPrompt{
		Title:       "Confirmar Eliminación",
		Message:     "¿Estás seguro? Esta acción no se puede deshacer y quedará registrada.",
		ConfirmText: "Sí, eliminar",
		Collection:  collection,
		RecordID:    id,
	})
	if err != nil {
		return false, err
	}
	if !confirmed {
		u.logger.Info("delete not confirmed", zap.String("org_id", actor.OrgID), zap.String("collection", collection), zap.String("record_id", id))
		return false, nil
	}

	before, err := u.store.Get(ctx, actor.OrgID, collection, id)
	if err != nil {
		u.logger.Warn("delete pre-image unavailable", zap.String("collection", collection), zap.String("record_id", id), zap.Error(err))
		before = nil
	}
	if err := u.store.Delete(ctx, actor.OrgID, collection, id); err != nil {
		u.logger.Error("delete failed", zap.String("org_id", actor.OrgID), zap.String("collection", collection), zap.String("record_id", id), zap.Error(err))
		return false, err
	}

	u.audit.Log(ctx, actor, s.Action("DELETE"), s.Title, map[string]any{
		"docId":       id,
		"deletedData": withoutID(before),
	})
	return true, nil
}

// CreateTenantAccess provisions a portal identity for a tenant with the DNI as
// initial password. ErrEmailAlreadyInUse leaves the tenant record untouched.
func (u *RecordManager) CreateTenantAccess(ctx context.Context, actor entities.Actor, tenantID string) (entities.Document, error) {
	tenantDoc, err := u.Get(ctx, actor, entities.CollectionTenants, tenantID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	var tenant entities.Tenant
	if err := entities.Decode(tenantDoc, &tenant); err != nil {
		return nil, err
	}
	if tenant.HasAccess {
		return nil, ErrTenantAccessExists
	}
	email := strings.TrimSpace(tenant.Email)
	password := strings.TrimSpace(tenant.DNI)
	if email == "" || password == "" {
		return nil, ErrTenantAccessIncomplete
	}
	if u.identity == nil || u.users == nil {
		return nil, errors.New("identity provider not configured")
	}

	uid, err := u.identity.CreateIdentity(ctx, email, password)
	if err != nil {
		u.logger.Warn("create access failed", zap.String("org_id", actor.OrgID), zap.String("tenant_id", tenant.ID), zap.Error(err))
		return nil, err
	}
	if _, err := u.users.Create(ctx, entities.User{
		UID:         uid,
		Email:       email,
		Role:        entities.RoleTenant,
		OrgID:       actor.OrgID,
		DNI:         password,
		TenantDocID: tenant.ID,
	}); err != nil {
		return nil, fmt.Errorf("create tenant profile: %w", err)
	}

	updated, err := u.store.Update(ctx, actor.OrgID, entities.CollectionTenants, tenant.ID, entities.Document{
		"hasAccess": true,
		"uid":       uid,
		"password":  password,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTenantNotFound
	}

	u.audit.Log(ctx, actor, "CREATE_TENANT_ACCESS", schema.Tenants.Title, map[string]any{
		"tenantId":    tenant.ID,
		"tenantEmail": email,
	})
	return updated, nil
}

// resolveReferences checks every reference field and copies derived fields
// (a payment's tenantId/propertyId come from its lease).
func (u *RecordManager) resolveReferences(ctx context.Context, orgID string, s schema.Schema, doc entities.Document) error {
	fetched := map[string]entities.Document{}
	for _, f := range s.References() {
		id := doc.String(f.Name)
		if id == "" {
			continue
		}
		ref, err := u.store.Get(ctx, orgID, f.Options.Collection, id)
		if err != nil {
			return err
		}
		if ref == nil {
			return fmt.Errorf("%w: %s %q", ErrReferenceNotFound, f.Name, id)
		}
		fetched[f.Name] = ref
	}
	for _, d := range s.Derive {
		ref, ok := fetched[d.From]
		if !ok {
			continue
		}
		for _, field := range d.Copy {
			if v, ok := ref[field]; ok {
				doc[field] = v
			}
		}
	}
	return nil
}

func (u *RecordManager) uploadAttachments(ctx context.Context, s schema.Schema, folder string, uploads []entities.Upload) ([]string, error) {
	if len(uploads) == 0 {
		return []string{}, nil
	}
	if u.storage == nil {
		return nil, errors.New("object storage not configured")
	}
	paths := make([]string, len(uploads))
	for i, up := range uploads {
		paths[i] = s.AttachmentPrefix + "/" + folder + "/" + up.Name
	}
	return uploadAll(ctx, u.storage, paths, uploads)
}

// uploadAll stores every upload in parallel and returns the URLs in input order.
func uploadAll(ctx context.Context, storage interfaces.IObjectStorage, paths []string, uploads []entities.Upload) ([]string, error) {
	urls := make([]string, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	for i := range uploads {
		g.Go(func() error {
			url, err := storage.Put(gctx, paths[i], uploads[i])
			if err != nil {
				return fmt.Errorf("upload %s: %w", uploads[i].Name, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func withoutID(d entities.Document) entities.Document {
	if d == nil {
		return nil
	}
	out := d.Clone()
	delete(out, entities.FieldID)
	return out
}
