package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

// Alert is one line of the dashboard's attention box.
type Alert struct {
	Kind     string `json:"kind"`
	RecordID string `json:"recordId"`
	Message  string `json:"message"`
}

const (
	AlertExpiringLease  = "expiringLease"
	AlertOverduePayment = "overduePayment"
)

type DashboardView struct {
	Today            string         `json:"today"`
	Income           float64        `json:"income"`
	Expenses         float64        `json:"expenses"`
	Properties       int            `json:"properties"`
	ActiveRentals    int            `json:"activeRentals"`
	OccupancyPercent int            `json:"occupancyPercent"`
	PropertyStatus   map[string]int `json:"propertyStatus"`
	Alerts           []Alert        `json:"alerts"`
}

type IDashboard interface {
	Overview(ctx context.Context, actor entities.Actor) (DashboardView, error)
}

// Dashboard computes KPIs straight from each collection. Property status and
// lease status are counted independently and may disagree.
type Dashboard struct {
	store  interfaces.IRecordStore
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

var _ IDashboard = (*Dashboard)(nil)

func NewDashboard(store interfaces.IRecordStore, loc *time.Location, logger *zap.Logger) *Dashboard {
	if loc == nil {
		loc = time.UTC
	}
	return &Dashboard{store: store, loc: loc, logger: logging.OrNop(logger).Named("dashboard"), now: time.Now}
}

func (u *Dashboard) Overview(ctx context.Context, actor entities.Actor) (DashboardView, error) {
	set, err := loadPortfolio(ctx, u.store, actor.OrgID)
	if err != nil {
		return DashboardView{}, err
	}
	today := dates.Today(u.now(), u.loc)
	horizon, _ := dates.AddDays(today, 30)

	view := DashboardView{Today: today, Properties: len(set.properties), PropertyStatus: map[string]int{}, Alerts: []Alert{}}
	for _, p := range set.payments {
		switch entities.PaymentStatus(p.String("status")) {
		case entities.PaymentStatusPagado, entities.PaymentStatusVerificado:
			view.Income += p.Float("amount")
		}
	}
	view.Expenses = sumAmounts(set.expenses, "amount")
	for _, p := range set.properties {
		view.PropertyStatus[p.String("status")]++
	}

	for _, r := range set.leases {
		if r.String("status") != string(entities.RentalStatusActivo) {
			continue
		}
		view.ActiveRentals++
		end := r.String("endDate")
		if end >= today && end <= horizon {
			view.Alerts = append(view.Alerts, Alert{
				Kind:     AlertExpiringLease,
				RecordID: r.ID(),
				Message: fmt.Sprintf("El contrato de %s en %s vence pronto (%s).",
					set.name(set.tenants, r.String("tenantId")), set.name(set.properties, r.String("propertyId")), dates.FormatLong(end)),
			})
		}
	}
	if view.Properties > 0 {
		view.OccupancyPercent = int(math.Round(float64(view.ActiveRentals) / float64(view.Properties) * 100))
	}
	for _, p := range set.payments {
		if p.String("status") != string(entities.PaymentStatusPendiente) || p.String("paymentDate") >= today {
			continue
		}
		tenant := "N/A"
		if rental, ok := set.rentals[p.String("rentalId")]; ok {
			tenant = set.name(set.tenants, rental.String("tenantId"))
		}
		view.Alerts = append(view.Alerts, Alert{
			Kind:     AlertOverduePayment,
			RecordID: p.ID(),
			Message:  fmt.Sprintf("Pago de %s por el concepto \"%s\" está vencido.", tenant, p.String("concept")),
		})
	}
	return view, nil
}

// portfolio is every record the dashboard and the financial report read, keyed by id.
type portfolio struct {
	properties map[string]entities.Document
	tenants    map[string]entities.Document
	rentals    map[string]entities.Document
	leases     []entities.Document
	payments   []entities.Document
	expenses   []entities.Document
}

func loadPortfolio(ctx context.Context, store interfaces.IRecordStore, orgID string) (portfolio, error) {
	var set portfolio
	byID := func(collection string) (map[string]entities.Document, error) {
		docs, err := store.List(ctx, orgID, collection, entities.Query{})
		if err != nil {
			return nil, err
		}
		out := make(map[string]entities.Document, len(docs))
		for _, d := range docs {
			out[d.ID()] = d
		}
		return out, nil
	}
	var err error
	if set.properties, err = byID(entities.CollectionProperties); err != nil {
		return set, err
	}
	if set.tenants, err = byID(entities.CollectionTenants); err != nil {
		return set, err
	}
	if set.leases, err = store.List(ctx, orgID, entities.CollectionRentals, entities.Query{OrderBy: "endDate"}); err != nil {
		return set, err
	}
	set.rentals = make(map[string]entities.Document, len(set.leases))
	for _, r := range set.leases {
		set.rentals[r.ID()] = r
	}
	if set.payments, err = store.List(ctx, orgID, entities.CollectionPayments, entities.Query{OrderBy: "paymentDate"}); err != nil {
		return set, err
	}
	set.expenses, err = store.List(ctx, orgID, entities.CollectionExpenses, entities.Query{OrderBy: "date"})
	return set, err
}

func (p portfolio) name(docs map[string]entities.Document, id string) string {
	if d, ok := docs[id]; ok && d.String("name") != "" {
		return d.String("name")
	}
	return "N/A"
}
