package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrTemplateNotFound         = errors.New("contract template not found")
	ErrRentalNotFound           = errors.New("rental not found")
	ErrRentalNotActive          = errors.New("rental is not active")
	ErrGeneratedContractMissing = errors.New("generated contract not found")
	ErrEmptyContract            = errors.New("generated contract has no content")
)

// LeaseView is a lease with its tenant and property resolved. Missing references
// resolve to empty documents.
type LeaseView struct {
	Rental   entities.Document
	Tenant   entities.Document
	Property entities.Document
}

// Placeholders maps the template tokens to the lease data.
func (l LeaseView) Placeholders() map[string]any {
	orDefault := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return map[string]any{
		"[NOMBRE_INQUILINO]":               l.Tenant.String("name"),
		"[DNI_INQUILINO]":                  l.Tenant.String("dni"),
		"[DOMICILIO_INQUILINO]":            l.Tenant.String("domicilio"),
		"[EMAIL_INQUILINO]":                l.Tenant.String("email"),
		"[TELEFONO_INQUILINO]":             l.Tenant.String("phone"),
		"[NOMBRE_PROPIEDAD]":               l.Property.String("name"),
		"[DIRECCION_PROPIEDAD]":            l.Property.String("address"),
		"[DESCRIPCION_DETALLADA_INMUEBLE]": orDefault(l.Property.String("detailedDescription"), "No especificada"),
		"[DETALLES_DEPARTAMENTO]":          orDefault(l.Rental.String("departmentDetails"), "No especificado"),
		"[TIPO_PROPIEDAD]":                 l.Property.String("type"),
		"[FECHA_INICIO_CONTRATO]":          dates.FormatLong(l.Rental.String("startDate")),
		"[FECHA_FIN_CONTRATO]":             dates.FormatLong(l.Rental.String("endDate")),
		"[MONTO_ALQUILER_NUMERO]":          l.Rental.Float("rentAmount"),
	}
}

func loadLease(ctx context.Context, store interfaces.IRecordStore, orgID, rentalID string) (LeaseView, error) {
	rentalID = strings.TrimSpace(rentalID)
	if rentalID == "" {
		return LeaseView{}, ErrRentalNotFound
	}
	rental, err := store.Get(ctx, orgID, entities.CollectionRentals, rentalID)
	if err != nil {
		return LeaseView{}, err
	}
	if rental == nil {
		return LeaseView{}, ErrRentalNotFound
	}
	view := LeaseView{Rental: rental, Tenant: entities.Document{}, Property: entities.Document{}}
	if id := rental.String("tenantId"); id != "" {
		t, err := store.Get(ctx, orgID, entities.CollectionTenants, id)
		if err != nil {
			return LeaseView{}, err
		}
		if t != nil {
			view.Tenant = t
		}
	}
	if id := rental.String("propertyId"); id != "" {
		p, err := store.Get(ctx, orgID, entities.CollectionProperties, id)
		if err != nil {
			return LeaseView{}, err
		}
		if p != nil {
			view.Property = p
		}
	}
	return view, nil
}

// IContractManager keeps the contracts generated from templates under their lease.
type IContractManager interface {
	Save(ctx context.Context, actor entities.Actor, templateID, rentalID, content string) (entities.Document, error)
	List(ctx context.Context, actor entities.Actor, rentalID string) ([]entities.Document, error)
	Delete(ctx context.Context, actor entities.Actor, rentalID, contractID string, confirmer interfaces.IConfirmer) (bool, error)
}

type ContractManager struct {
	store  interfaces.IRecordStore
	audit  IAuditLogger
	logger *zap.Logger
	now    func() time.Time
}

var _ IContractManager = (*ContractManager)(nil)

func NewContractManager(store interfaces.IRecordStore, audit IAuditLogger, logger *zap.Logger) *ContractManager {
	return &ContractManager{store: store, audit: audit, logger: logging.OrNop(logger).Named("contracts"), now: time.Now}
}

func (u *ContractManager) Save(ctx context.Context, actor entities.Actor, templateID, rentalID, content string) (entities.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContract
	}
	lease, err := loadLease(ctx, u.store, actor.OrgID, rentalID)
	if err != nil {
		return nil, err
	}
	if lease.Rental.String("status") != string(entities.RentalStatusActivo) {
		return nil, ErrRentalNotActive
	}
	templateID = strings.TrimSpace(templateID)
	template, err := u.store.Get(ctx, actor.OrgID, entities.CollectionContractTemplates, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	rentalID = lease.Rental.ID()
	created, err := u.store.Create(ctx, actor.OrgID, entities.ChildCollection(entities.CollectionRentals, rentalID, entities.SubcollectionGeneratedContracts), entities.Document{
		entities.FieldID: uuid.NewString(),
		"content":        content,
		"templateId":     templateID,
		"templateName":   template.String("name"),
		"rentalId":       rentalID,
		"createdAt":      dates.Stamp(u.now()),
		"createdBy":      actor.Email,
	})
	if err != nil {
		u.logger.Error("save contract failed", zap.String("org_id", actor.OrgID), zap.String("rental_id", rentalID), zap.Error(err))
		return nil, err
	}
	u.audit.Log(ctx, actor, "GENERATE_CONTRACT_FROM_TEMPLATE", schema.ContractTemplates.Title, map[string]any{
		"rentalId":   rentalID,
		"templateId": templateID,
	})
	return created, nil
}

func (u *ContractManager) List(ctx context.Context, actor entities.Actor, rentalID string) ([]entities.Document, error) {
	lease, err := loadLease(ctx, u.store, actor.OrgID, rentalID)
	if err != nil {
		return nil, err
	}
	return u.store.List(ctx, actor.OrgID, entities.ChildCollection(entities.CollectionRentals, lease.Rental.ID(), entities.SubcollectionGeneratedContracts),
		entities.Query{OrderBy: "createdAt", Descending: true})
}

func (u *ContractManager) Delete(ctx context.Context, actor entities.Actor, rentalID, contractID string, confirmer interfaces.IConfirmer) (bool, error) {
	lease, err := loadLease(ctx, u.store, actor.OrgID, rentalID)
	if err != nil {
		return false, err
	}
	rentalID = lease.Rental.ID()
	path := entities.ChildCollection(entities.CollectionRentals, rentalID, entities.SubcollectionGeneratedContracts)
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return false, ErrGeneratedContractMissing
	}
	existing, err := u.store.Get(ctx, actor.OrgID, path, contractID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrGeneratedContractMissing
	}

	confirmed, err := confirmer.Confirm(ctx, entities.ConfirmationPrompt{
		Title:       "Confirmar",
		Message:     "¿Estás seguro de que quieres eliminar este contrato generado?",
		ConfirmText: "Eliminar",
		Collection:  path,
		RecordID:    contractID,
	})
	if err != nil || !confirmed {
		return false, err
	}
	if err := u.store.Delete(ctx, actor.OrgID, path, contractID); err != nil {
		return false, err
	}
	u.audit.Log(ctx, actor, "DELETE_GENERATED_CONTRACT", schema.Rentals.Title, map[string]any{
		"rentalId":            rentalID,
		"generatedContractId": contractID,
	})
	return true, nil
}
