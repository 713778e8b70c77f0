package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Reminder job metrics
	RemindersTotal *prometheus.CounterVec
	ReminderRuns   *prometheus.CounterVec

	// Audit metrics
	AuditEntries *prometheus.CounterVec

	// AI metrics
	AICalls *prometheus.CounterVec

	// Session metrics
	SnapshotDeliveries   *prometheus.CounterVec
	ActiveSessions       prometheus.Gauge
	PendingConfirmations prometheus.Gauge
}

// NewMetrics creates and registers gestorpro metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestor_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gestor_http_request_duration_seconds",
				Help:    "Duration of HTTP request processing",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		RemindersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestor_reminders_total",
				Help: "Reminder messages by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		ReminderRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestor_reminder_runs_total",
				Help: "Reminder job runs by outcome",
			},
			[]string{"outcome"},
		),

		AuditEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestor_audit_entries_total",
				Help: "Audit entries by outcome (written, failed, queued, dropped, replayed)",
			},
			[]string{"outcome"},
		),

		AICalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestor_ai_calls_total",
				Help: "Text generation calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		SnapshotDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gestor_snapshot_deliveries_total",
				Help: "Collection snapshots delivered to sessions",
			},
			[]string{"collection", "outcome"},
		),

		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "gestor_active_sessions",
				Help: "Number of open sessions",
			},
		),

		PendingConfirmations: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "gestor_pending_confirmations",
				Help: "Confirmation requests awaiting an answer",
			},
		),
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) Reminder(kind, outcome string) {
	if m == nil {
		return
	}
	m.RemindersTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ReminderRun(outcome string) {
	if m == nil {
		return
	}
	m.ReminderRuns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Audit(outcome string) {
	if m == nil {
		return
	}
	m.AuditEntries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AICall(operation, outcome string) {
	if m == nil {
		return
	}
	m.AICalls.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) SnapshotDelivered(collection string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.SnapshotDeliveries.WithLabelValues(collection, outcome).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

func (m *Metrics) SetPendingConfirmations(n int) {
	if m == nil {
		return
	}
	m.PendingConfirmations.Set(float64(n))
}
