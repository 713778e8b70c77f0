package interfaces

import (
	"context"
	"time"

	"gestorpro/internal/domain/entities"
)

// IReminderLedger records reminders already sent. Claim returns false when key
// was claimed before and has not expired; Release drops a claim whose send failed.
type IReminderLedger interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type QueuedAudit struct {
	OrgID string              `json:"orgId"`
	Entry entities.AuditEntry `json:"entry"`
}

// IAuditRetryQueue holds audit entries whose write failed.
type IAuditRetryQueue interface {
	Enqueue(ctx context.Context, item QueuedAudit) error
	Dequeue(ctx context.Context, max int) ([]QueuedAudit, error)
}
