package livequery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var ErrOrganizationGone = errors.New("organization not found")

// SnapshotFeed re-reads a whole collection whenever its change subject fires and
// hands the result to the subscriber. Bursts of events collapse into one read.
type SnapshotFeed struct {
	nc     *nats.Conn
	store  interfaces.IRecordStore
	orgs   interfaces.IOrganizationRepository
	logger *zap.Logger
}

var _ interfaces.ISnapshotFeed = (*SnapshotFeed)(nil)

func NewSnapshotFeed(nc *nats.Conn, store interfaces.IRecordStore, orgs interfaces.IOrganizationRepository, logger *zap.Logger) *SnapshotFeed {
	return &SnapshotFeed{
		nc:     nc,
		store:  store,
		orgs:   orgs,
		logger: logging.OrNop(logger).Named("snapshots"),
	}
}

func (f *SnapshotFeed) Watch(ctx context.Context, orgID, collection string, onSnapshot func([]entities.Document), onError func(error)) (func(), error) {
	return f.watch(ctx, CollectionSubject(orgID, collection), func(ctx context.Context) {
		docs, err := f.store.List(ctx, orgID, collection, entities.Query{})
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			onError(fmt.Errorf("read %s: %w", collection, err))
			return
		}
		onSnapshot(docs)
	})
}

func (f *SnapshotFeed) WatchOrganization(ctx context.Context, orgID string, onChange func(entities.Organization), onError func(error)) (func(), error) {
	return f.watch(ctx, OrganizationSubject(orgID), func(ctx context.Context) {
		org, err := f.orgs.GetByID(ctx, orgID)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			onError(fmt.Errorf("read organization: %w", err))
			return
		}
		if org.ID == "" {
			onError(ErrOrganizationGone)
			return
		}
		onChange(org)
	})
}

// watch subscribes before the first read so no change between the two is lost.
// deliver runs on one goroutine per subscription, so deliveries never overlap.
func (f *SnapshotFeed) watch(ctx context.Context, subject string, deliver func(context.Context)) (func(), error) {
	wake := make(chan struct{}, 1)
	signal := func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}

	sub, err := f.nc.Subscribe(subject, func(*nats.Msg) { signal() })
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}

	wctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-wctx.Done():
				return
			case <-wake:
				deliver(wctx)
			}
		}
	}()
	signal()

	var once sync.Once
	return func() {
		once.Do(func() {
			if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
				f.logger.Debug("unsubscribe failed", zap.String("subject", subject), zap.Error(err))
			}
			cancel()
			<-done
		})
	}, nil
}
