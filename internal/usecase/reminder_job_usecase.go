package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/phone"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

type ReminderKind string

const (
	ReminderOverdue  ReminderKind = "overdue"
	ReminderUpcoming ReminderKind = "upcoming"
	ReminderExpiring ReminderKind = "expiring"
)

const (
	upcomingWindowDays = 4
	expiringWindowDays = 30
	reminderLedgerTTL  = 36 * time.Hour
)

// Reminder is one WhatsApp message the daily job intends to send.
type Reminder struct {
	Kind     ReminderKind
	OrgID    string
	RecordID string
	TenantID string
	Message  string
}

type ReminderReport struct {
	Today      string
	Planned    int
	Sent       int
	Failed     int
	Skipped    int
	Duplicates int
}

// IReminderJob is the daily pass over every organization: overdue payments,
// payments due within 4 days and active leases ending within 30 days.
type IReminderJob interface {
	Run(ctx context.Context) (ReminderReport, error)
	Plan(ctx context.Context, orgID, today string) ([]Reminder, error)
}

type ReminderJob struct {
	orgs        interfaces.IOrganizationRepository
	store       interfaces.IRecordStore
	sender      interfaces.IMessageSender
	ledger      interfaces.IReminderLedger
	metrics     *metrics.Metrics
	logger      *zap.Logger
	loc         *time.Location
	concurrency int
	now         func() time.Time
}

var _ IReminderJob = (*ReminderJob)(nil)

// NewReminderJob builds the job; ledger may be nil, in which case a manual re-run
// on the same day sends the same reminders again.
func NewReminderJob(orgs interfaces.IOrganizationRepository, store interfaces.IRecordStore, sender interfaces.IMessageSender, ledger interfaces.IReminderLedger, loc *time.Location, concurrency int, m *metrics.Metrics, logger *zap.Logger) *ReminderJob {
	if loc == nil {
		loc = time.UTC
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ReminderJob{
		orgs:        orgs,
		store:       store,
		sender:      sender,
		ledger:      ledger,
		metrics:     m,
		logger:      logging.OrNop(logger).Named("reminders"),
		loc:         loc,
		concurrency: concurrency,
		now:         time.Now,
	}
}

func (j *ReminderJob) Run(ctx context.Context) (ReminderReport, error) {
	today := dates.Today(j.now(), j.loc)
	report := ReminderReport{Today: today}
	j.logger.Info("run start", zap.String("today", today))

	orgs, err := j.orgs.List(ctx)
	if err != nil {
		j.metrics.ReminderRun("error")
		j.logger.Error("list organizations failed", zap.Error(err))
		return report, err
	}

	var mu sync.Mutex
	count := func(field *int, kind ReminderKind, outcome string) {
		mu.Lock()
		*field++
		mu.Unlock()
		j.metrics.Reminder(string(kind), outcome)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)
	for _, org := range orgs {
		reminders, err := j.Plan(ctx, org.ID, today)
		if err != nil {
			j.logger.Error("plan failed", zap.String("org_id", org.ID), zap.Error(err))
			continue
		}
		report.Planned += len(reminders)
		for _, r := range reminders {
			g.Go(func() error {
				switch j.deliver(gctx, r, today) {
				case deliverySent:
					count(&report.Sent, r.Kind, "sent")
				case deliveryFailed:
					count(&report.Failed, r.Kind, "failed")
				case deliverySkipped:
					count(&report.Skipped, r.Kind, "skipped")
				case deliveryDuplicate:
					count(&report.Duplicates, r.Kind, "duplicate")
				}
				// Individual failures never abort the run.
				return nil
			})
		}
	}
	_ = g.Wait()

	j.metrics.ReminderRun("ok")
	j.logger.Info("run finished", zap.String("today", today), zap.Int("planned", report.Planned),
		zap.Int("sent", report.Sent), zap.Int("failed", report.Failed), zap.Int("skipped", report.Skipped), zap.Int("duplicates", report.Duplicates))
	return report, nil
}

// Plan computes the reminders of one organization for the calendar day today.
func (j *ReminderJob) Plan(ctx context.Context, orgID, today string) ([]Reminder, error) {
	upcomingEnd, err := dates.AddDays(today, upcomingWindowDays)
	if err != nil {
		return nil, err
	}
	expiringEnd, err := dates.AddDays(today, expiringWindowDays)
	if err != nil {
		return nil, err
	}
	pending := entities.Where("status", entities.OpEq, string(entities.PaymentStatusPendiente))

	var out []Reminder
	overdue, err := j.store.List(ctx, orgID, entities.CollectionPayments, entities.Query{Filters: []entities.Filter{
		pending,
		entities.Where("paymentDate", entities.OpLt, today),
	}})
	if err != nil {
		return nil, fmt.Errorf("overdue payments: %w", err)
	}
	for _, p := range overdue {
		out = append(out, Reminder{
			Kind: ReminderOverdue, OrgID: orgID, RecordID: p.ID(), TenantID: p.String("tenantId"),
			Message: fmt.Sprintf("Recordatorio: Tienes un pago vencido por \"%s\" de S/ %s.", p.String("concept"), formatAmount(p.Float("amount"))),
		})
	}

	upcoming, err := j.store.List(ctx, orgID, entities.CollectionPayments, entities.Query{Filters: []entities.Filter{
		pending,
		entities.Where("paymentDate", entities.OpGte, today),
		entities.Where("paymentDate", entities.OpLt, upcomingEnd),
	}})
	if err != nil {
		return nil, fmt.Errorf("upcoming payments: %w", err)
	}
	for _, p := range upcoming {
		days, err := dates.DaysBetween(today, p.String("paymentDate"))
		if err != nil {
			continue
		}
		out = append(out, Reminder{
			Kind: ReminderUpcoming, OrgID: orgID, RecordID: p.ID(), TenantID: p.String("tenantId"),
			Message: UpcomingPaymentMessage(p.String("concept"), p.Float("amount"), days),
		})
	}

	expiring, err := j.store.List(ctx, orgID, entities.CollectionRentals, entities.Query{Filters: []entities.Filter{
		entities.Where("status", entities.OpEq, string(entities.RentalStatusActivo)),
		entities.Where("endDate", entities.OpGte, today),
		entities.Where("endDate", entities.OpLte, expiringEnd),
	}})
	if err != nil {
		return nil, fmt.Errorf("expiring leases: %w", err)
	}
	for _, r := range expiring {
		out = append(out, Reminder{
			Kind: ReminderExpiring, OrgID: orgID, RecordID: r.ID(), TenantID: r.String("tenantId"),
			Message: fmt.Sprintf("Alerta: Tu contrato de alquiler está a punto de vencer el %s. Por favor, contacta a la administración.", dates.FormatLong(r.String("endDate"))),
		})
	}
	return out, nil
}

func UpcomingPaymentMessage(concept string, amount float64, days int) string {
	if days == 0 {
		return fmt.Sprintf("Recordatorio Amistoso: Tu pago por \"%s\" de S/ %s vence HOY.", concept, formatAmount(amount))
	}
	return fmt.Sprintf("Recordatorio Amistoso: Tu pago por \"%s\" de S/ %s vence en %d día(s).", concept, formatAmount(amount), days)
}

// ReminderLedgerKey identifies one reminder on one calendar day.
func ReminderLedgerKey(r Reminder, today string) string {
	return strings.Join([]string{"gestor", "reminder", r.OrgID, string(r.Kind), r.RecordID, today}, ":")
}

type deliveryOutcome int

const (
	deliverySent deliveryOutcome = iota
	deliveryFailed
	deliverySkipped
	deliveryDuplicate
)

func (j *ReminderJob) deliver(ctx context.Context, r Reminder, today string) deliveryOutcome {
	log := j.logger.With(zap.String("org_id", r.OrgID), zap.String("kind", string(r.Kind)), zap.String("record_id", r.RecordID))

	tenant, err := j.store.Get(ctx, r.OrgID, entities.CollectionTenants, r.TenantID)
	if err != nil {
		log.Error("tenant lookup failed", zap.String("tenant_id", r.TenantID), zap.Error(err))
		return deliveryFailed
	}
	if tenant == nil || strings.TrimSpace(tenant.String("phone")) == "" {
		log.Info("tenant not found or without phone", zap.String("tenant_id", r.TenantID))
		return deliverySkipped
	}

	key := ReminderLedgerKey(r, today)
	claimed := false
	if j.ledger != nil {
		fresh, err := j.ledger.Claim(ctx, key, reminderLedgerTTL)
		if err != nil {
			log.Warn("ledger unavailable, sending anyway", zap.Error(err))
		} else if !fresh {
			log.Debug("already sent today")
			return deliveryDuplicate
		}
		claimed = err == nil
	}

	to := phone.Normalize(tenant.String("phone"))
	err = interfaces.ErrMessagingNotConfigured
	if j.sender != nil {
		err = j.sender.SendWhatsApp(ctx, to, r.Message)
	}
	if err != nil {
		log.Error("send failed", zap.String("to", to), zap.Error(err))
		if claimed {
			// A failed send must stay eligible for a same-day re-run.
			if rerr := j.ledger.Release(ctx, key); rerr != nil {
				log.Warn("ledger release failed", zap.Error(rerr))
			}
		}
		return deliveryFailed
	}
	return deliverySent
}
