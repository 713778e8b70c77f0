// Package redisstore keeps the reminder ledger and the audit retry queue in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gestorpro/internal/config"
	"gestorpro/internal/usecase/interfaces"
)

const AuditRetryKey = "gestor:audit:retry"

// Connect returns nil, nil when no address is configured; callers then run
// without a ledger or retry queue.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password.Value(),
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

type ReminderLedger struct {
	client *redis.Client
}

var _ interfaces.IReminderLedger = (*ReminderLedger)(nil)

func NewReminderLedger(client *redis.Client) *ReminderLedger {
	return &ReminderLedger{client: client}
}

// Claim is a SETNX: only the first caller for key within ttl gets true.
func (l *ReminderLedger) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", key, err)
	}
	return ok, nil
}

func (l *ReminderLedger) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

// AuditRetryQueue is a FIFO list of audit entries waiting to be rewritten.
type AuditRetryQueue struct {
	client *redis.Client
	key    string
}

var _ interfaces.IAuditRetryQueue = (*AuditRetryQueue)(nil)

func NewAuditRetryQueue(client *redis.Client) *AuditRetryQueue {
	return &AuditRetryQueue{client: client, key: AuditRetryKey}
}

func (q *AuditRetryQueue) Enqueue(ctx context.Context, item interfaces.QueuedAudit) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal queued audit: %w", err)
	}
	return q.client.RPush(ctx, q.key, data).Err()
}

// Dequeue pops up to max entries atomically. Entries that no longer decode are
// discarded with the batch rather than blocking the queue.
func (q *AuditRetryQueue) Dequeue(ctx context.Context, max int) ([]interfaces.QueuedAudit, error) {
	if max <= 0 {
		return nil, nil
	}
	var head *redis.StringSliceCmd
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		head = pipe.LRange(ctx, q.key, 0, int64(max-1))
		pipe.LTrim(ctx, q.key, int64(max), -1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dequeue audit entries: %w", err)
	}

	raw := head.Val()
	items := make([]interfaces.QueuedAudit, 0, len(raw))
	for _, s := range raw {
		var it interfaces.QueuedAudit
		if err := json.Unmarshal([]byte(s), &it); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (q *AuditRetryQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
