package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

// IAuditLogger records who did what. Log never fails the caller: a failed write is
// queued for replay, and an entry that cannot even be queued is reported and dropped.
type IAuditLogger interface {
	Log(ctx context.Context, actor entities.Actor, action, section string, details map[string]any)
	Replay(ctx context.Context) (int, error)
}

type AuditLogger struct {
	store   interfaces.IRecordStore
	queue   interfaces.IAuditRetryQueue
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
	batch   int
}

var _ IAuditLogger = (*AuditLogger)(nil)

func NewAuditLogger(store interfaces.IRecordStore, queue interfaces.IAuditRetryQueue, m *metrics.Metrics, logger *zap.Logger) *AuditLogger {
	return &AuditLogger{
		store:   store,
		queue:   queue,
		metrics: m,
		logger:  logging.OrNop(logger).Named("audit"),
		now:     time.Now,
		batch:   100,
	}
}

// WithBatch caps how many queued entries one Replay drains.
func (a *AuditLogger) WithBatch(n int) *AuditLogger {
	if n > 0 {
		a.batch = n
	}
	return a
}

func (a *AuditLogger) Log(ctx context.Context, actor entities.Actor, action, section string, details map[string]any) {
	if !actor.Valid() {
		a.logger.Error("audit skipped: missing organization or actor",
			zap.String("action", action), zap.String("org_id", actor.OrgID), zap.String("user_id", actor.UserID))
		return
	}
	entry := entities.AuditEntry{
		Timestamp: dates.Stamp(a.now()),
		UserEmail: actor.Email,
		UserID:    actor.UserID,
		Action:    action,
		Section:   section,
		Details:   details,
	}
	// The primary mutation already happened; a cancelled request must not lose its entry.
	ctx = context.WithoutCancel(ctx)

	err := a.write(ctx, actor.OrgID, entry)
	if err == nil {
		a.metrics.Audit("written")
		return
	}
	a.metrics.Audit("failed")
	a.logger.Warn("audit write failed", zap.String("org_id", actor.OrgID), zap.String("action", action), zap.Error(err))

	if a.queue == nil {
		a.dropped(actor.OrgID, entry, err)
		return
	}
	if qErr := a.queue.Enqueue(ctx, interfaces.QueuedAudit{OrgID: actor.OrgID, Entry: entry}); qErr != nil {
		a.dropped(actor.OrgID, entry, qErr)
		return
	}
	a.metrics.Audit("queued")
}

// Replay drains up to one batch of queued entries, keeping their original timestamps.
// Entries that fail again go back to the queue.
func (a *AuditLogger) Replay(ctx context.Context) (int, error) {
	if a.queue == nil {
		return 0, nil
	}
	items, err := a.queue.Dequeue(ctx, a.batch)
	if err != nil {
		return 0, err
	}
	replayed := 0
	for i, item := range items {
		if err := a.write(ctx, item.OrgID, item.Entry); err != nil {
			for _, rest := range items[i:] {
				if qErr := a.queue.Enqueue(ctx, rest); qErr != nil {
					a.dropped(rest.OrgID, rest.Entry, qErr)
				}
			}
			return replayed, fmt.Errorf("replay audit entry: %w", err)
		}
		a.metrics.Audit("replayed")
		replayed++
	}
	if replayed > 0 {
		a.logger.Info("audit entries replayed", zap.Int("count", replayed))
	}
	return replayed, nil
}

func (a *AuditLogger) write(ctx context.Context, orgID string, entry entities.AuditEntry) error {
	if a.store == nil {
		return fmt.Errorf("record store not configured")
	}
	doc, err := entities.Encode(entry)
	if err != nil {
		return err
	}
	delete(doc, entities.FieldID)
	_, err = a.store.Create(ctx, orgID, entities.CollectionLogs, doc)
	return err
}

func (a *AuditLogger) dropped(orgID string, entry entities.AuditEntry, err error) {
	a.metrics.Audit("dropped")
	a.logger.Error("audit entry dropped",
		zap.String("org_id", orgID),
		zap.String("action", entry.Action),
		zap.String("section", entry.Section),
		zap.String("user_email", entry.UserEmail),
		zap.String("timestamp", entry.Timestamp),
		zap.Any("details", entry.Details),
		zap.Error(err))
}
