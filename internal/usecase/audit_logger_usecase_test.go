package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
	mock_interfaces "gestorpro/internal/usecase/interfaces/mocks"
)

var testActor = entities.Actor{UserID: "u1", Email: "admin@acme.pe", OrgID: "org1", Role: entities.RoleAdmin, SessionID: "s1"}

func fixedNow() time.Time {
	return time.Date(2025, 6, 5, 14, 3, 22, 0, time.UTC)
}

func TestAuditLogger_Log(t *testing.T) {
	t.Run("writes entry to logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		a := NewAuditLogger(store, nil, nil, nil)
		a.now = fixedNow

		store.EXPECT().Create(gomock.Any(), "org1", entities.CollectionLogs, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, doc entities.Document) (entities.Document, error) {
				if doc.String("action") != "CREATE_PAYMENT" || doc.String("section") != "Pagos" {
					t.Fatalf("unexpected entry %v", doc)
				}
				if doc.String("timestamp") != "2025-06-05T14:03:22.000Z" || doc.String("userEmail") != "admin@acme.pe" {
					t.Fatalf("unexpected entry %v", doc)
				}
				if _, ok := doc[entities.FieldID]; ok {
					t.Fatalf("entry must not carry an id")
				}
				return doc, nil
			})

		a.Log(context.Background(), testActor, "CREATE_PAYMENT", "Pagos", map[string]any{"docId": "p1"})
	})

	t.Run("missing actor writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIAuditRetryQueue(ctrl)
		a := NewAuditLogger(store, queue, nil, nil)

		a.Log(context.Background(), entities.Actor{Email: "x@y.z"}, "CREATE_PAYMENT", "Pagos", nil)
	})

	t.Run("failed write is queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIAuditRetryQueue(ctrl)
		m := metrics.NewMetrics(prometheus.NewRegistry())
		a := NewAuditLogger(store, queue, m, nil)
		a.now = fixedNow

		store.EXPECT().Create(gomock.Any(), "org1", entities.CollectionLogs, gomock.Any()).Return(nil, errors.New("throttled"))
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item interfaces.QueuedAudit) error {
			if item.OrgID != "org1" || item.Entry.Action != "DELETE_TENANT" || item.Entry.Timestamp != "2025-06-05T14:03:22.000Z" {
				t.Fatalf("unexpected queued item %+v", item)
			}
			return nil
		})

		a.Log(context.Background(), testActor, "DELETE_TENANT", "Inquilinos", nil)

		if got := testutil.ToFloat64(m.AuditEntries.WithLabelValues("queued")); got != 1 {
			t.Fatalf("expected 1 queued, got %v", got)
		}
	})

	t.Run("queue failure drops the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIAuditRetryQueue(ctrl)
		m := metrics.NewMetrics(prometheus.NewRegistry())
		a := NewAuditLogger(store, queue, m, nil)

		store.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		a.Log(context.Background(), testActor, "DELETE_TENANT", "Inquilinos", nil)

		if got := testutil.ToFloat64(m.AuditEntries.WithLabelValues("dropped")); got != 1 {
			t.Fatalf("expected 1 dropped, got %v", got)
		}
	})

	t.Run("cancelled request context still writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		a := NewAuditLogger(store, nil, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		store.EXPECT().Create(gomock.Any(), "org1", entities.CollectionLogs, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, doc entities.Document) (entities.Document, error) {
				if ctx.Err() != nil {
					t.Fatalf("expected live context, got %v", ctx.Err())
				}
				return doc, nil
			})

		a.Log(ctx, testActor, "UPDATE_TENANT", "Inquilinos", nil)
	})
}

func TestAuditLogger_Replay(t *testing.T) {
	t.Run("no queue", func(t *testing.T) {
		n, err := NewAuditLogger(nil, nil, nil, nil).Replay(context.Background())
		if n != 0 || err != nil {
			t.Fatalf("expected noop, got %d %v", n, err)
		}
	})

	t.Run("requeues the remainder after a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		queue := mock_interfaces.NewMockIAuditRetryQueue(ctrl)
		a := NewAuditLogger(store, queue, nil, nil)

		first := interfaces.QueuedAudit{OrgID: "org1", Entry: entities.AuditEntry{Action: "A", Timestamp: "2025-01-01T00:00:00.000Z"}}
		second := interfaces.QueuedAudit{OrgID: "org2", Entry: entities.AuditEntry{Action: "B"}}
		queue.EXPECT().Dequeue(gomock.Any(), 100).Return([]interfaces.QueuedAudit{first, second}, nil)
		gomock.InOrder(
			store.EXPECT().Create(gomock.Any(), "org1", entities.CollectionLogs, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, doc entities.Document) (entities.Document, error) {
					if doc.String("timestamp") != "2025-01-01T00:00:00.000Z" {
						t.Fatalf("original timestamp lost: %v", doc)
					}
					return doc, nil
				}),
			store.EXPECT().Create(gomock.Any(), "org2", entities.CollectionLogs, gomock.Any()).Return(nil, errors.New("still down")),
		)
		queue.EXPECT().Enqueue(gomock.Any(), second).Return(nil)

		n, err := a.Replay(context.Background())
		if n != 1 || err == nil {
			t.Fatalf("expected 1 replayed and an error, got %d %v", n, err)
		}
	})
	t.Run("batch size is configurable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queue := mock_interfaces.NewMockIAuditRetryQueue(ctrl)
		a := NewAuditLogger(nil, queue, nil, nil).WithBatch(25)

		queue.EXPECT().Dequeue(gomock.Any(), 25).Return(nil, nil)

		if n, err := a.Replay(context.Background()); n != 0 || err != nil {
			t.Fatalf("expected empty replay, got %d %v", n, err)
		}
	})
}
