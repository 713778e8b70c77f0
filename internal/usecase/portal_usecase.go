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
	"gestorpro/internal/domain/phone"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrNotATenant     = errors.New("portal is only available to tenants")
	ErrNoActiveRental = errors.New("tenant has no active rental")
)

// PortalView is everything a tenant sees on the portal home.
type PortalView struct {
	Tenant          entities.Document   `json:"tenant"`
	Rental          entities.Document   `json:"rental"`
	Property        entities.Document   `json:"property"`
	Payments        []entities.Document `json:"payments"`
	Maintenance     []entities.Document `json:"maintenance"`
	ServiceReceipts []entities.Document `json:"serviceReceipts"`
	ManagerWhatsApp string              `json:"managerWhatsApp,omitempty"`
}

type IPortal interface {
	Overview(ctx context.Context, actor entities.Actor) (PortalView, error)
	ReportMaintenance(ctx context.Context, actor entities.Actor, description string) (entities.Document, error)
}

type Portal struct {
	orgs   interfaces.IOrganizationRepository
	store  interfaces.IRecordStore
	logger *zap.Logger
	now    func() time.Time
}

var _ IPortal = (*Portal)(nil)

func NewPortal(orgs interfaces.IOrganizationRepository, store interfaces.IRecordStore, logger *zap.Logger) *Portal {
	return &Portal{orgs: orgs, store: store, logger: logging.OrNop(logger).Named("portal"), now: time.Now}
}

func (u *Portal) Overview(ctx context.Context, actor entities.Actor) (PortalView, error) {
	if actor.Role != entities.RoleTenant || actor.TenantDocID == "" {
		return PortalView{}, ErrNotATenant
	}
	tenant, err := u.store.Get(ctx, actor.OrgID, entities.CollectionTenants, actor.TenantDocID)
	if err != nil {
		return PortalView{}, err
	}
	if tenant == nil {
		return PortalView{}, ErrTenantNotFound
	}
	view := PortalView{Tenant: tenant}

	if view.Rental, err = activeLeaseOf(ctx, u.store, actor.OrgID, actor.TenantDocID); err != nil {
		return PortalView{}, err
	}
	if propertyID := view.Rental.String("propertyId"); propertyID != "" {
		if view.Property, err = u.store.Get(ctx, actor.OrgID, entities.CollectionProperties, propertyID); err != nil {
			return PortalView{}, err
		}
		view.Maintenance, err = u.store.List(ctx, actor.OrgID, entities.CollectionMaintenance, entities.Query{
			Filters: []entities.Filter{entities.Where("propertyId", entities.OpEq, propertyID)},
			OrderBy: "createdAt", Descending: true,
		})
		if err != nil {
			return PortalView{}, err
		}
	}
	if view.Payments, err = paymentsOf(ctx, u.store, actor.OrgID, actor.TenantDocID); err != nil {
		return PortalView{}, err
	}
	view.ServiceReceipts, err = u.store.List(ctx, actor.OrgID,
		entities.ChildCollection(entities.CollectionTenants, actor.TenantDocID, entities.SubcollectionServiceReceipts),
		entities.Query{OrderBy: "createdAt", Descending: true})
	if err != nil {
		return PortalView{}, err
	}

	org, err := u.orgs.GetByID(ctx, actor.OrgID)
	if err != nil {
		return PortalView{}, err
	}
	view.ManagerWhatsApp = phone.WhatsAppLink(org.Settings.ManagerPhoneNumber)
	return view, nil
}

// ReportMaintenance files a ticket for the property of the tenant's active lease.
// Portal reports are not audited.
func (u *Portal) ReportMaintenance(ctx context.Context, actor entities.Actor, description string) (entities.Document, error) {
	if actor.Role != entities.RoleTenant || actor.TenantDocID == "" {
		return nil, ErrNotATenant
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyPrompt
	}
	rental, err := activeLeaseOf(ctx, u.store, actor.OrgID, actor.TenantDocID)
	if err != nil {
		return nil, err
	}
	if rental == nil || rental.String("propertyId") == "" {
		return nil, ErrNoActiveRental
	}
	created, err := u.store.Create(ctx, actor.OrgID, entities.CollectionMaintenance, entities.Document{
		entities.FieldID: uuid.NewString(),
		"propertyId":     rental.String("propertyId"),
		"description":    description,
		"status":         string(entities.MaintenanceStatusPendiente),
		"priority":       string(entities.MaintenancePriorityMedia),
		"reportedBy":     actor.UserID,
		"createdAt":      dates.Stamp(u.now()),
		"orgId":          actor.OrgID,
	})
	if err != nil {
		u.logger.Error("report maintenance failed", zap.String("org_id", actor.OrgID), zap.Error(err))
		return nil, err
	}
	u.logger.Info("maintenance reported", zap.String("org_id", actor.OrgID), zap.String("record_id", created.ID()))
	return created, nil
}

// activeLeaseOf returns the first Activo lease of a tenant, or nil.
func activeLeaseOf(ctx context.Context, store interfaces.IRecordStore, orgID, tenantID string) (entities.Document, error) {
	if tenantID == "" {
		return nil, nil
	}
	rentals, err := store.List(ctx, orgID, entities.CollectionRentals, entities.Query{Filters: []entities.Filter{
		entities.Where("tenantId", entities.OpEq, tenantID),
		entities.Where("status", entities.OpEq, string(entities.RentalStatusActivo)),
	}})
	if err != nil || len(rentals) == 0 {
		return nil, err
	}
	return rentals[0], nil
}

// paymentsOf lists a tenant's payments newest first.
func paymentsOf(ctx context.Context, store interfaces.IRecordStore, orgID, tenantID string) ([]entities.Document, error) {
	if tenantID == "" {
		return nil, nil
	}
	return store.List(ctx, orgID, entities.CollectionPayments, entities.Query{
		Filters: []entities.Filter{entities.Where("tenantId", entities.OpEq, tenantID)},
		OrderBy: "paymentDate", Descending: true,
	})
}
