package livequery

import (
	"context"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

// PublishingStore wraps a record store and announces every successful write.
// A failed announcement is logged; the write itself stands.
type PublishingStore struct {
	interfaces.IRecordStore
	publisher interfaces.IChangePublisher
	logger    *zap.Logger
}

var _ interfaces.IRecordStore = (*PublishingStore)(nil)

func NewPublishingStore(store interfaces.IRecordStore, publisher interfaces.IChangePublisher, logger *zap.Logger) *PublishingStore {
	return &PublishingStore{
		IRecordStore: store,
		publisher:    publisher,
		logger:       logging.OrNop(logger).Named("livequery"),
	}
}

func (s *PublishingStore) Create(ctx context.Context, orgID, collection string, doc entities.Document) (entities.Document, error) {
	created, err := s.IRecordStore.Create(ctx, orgID, collection, doc)
	if err != nil {
		return nil, err
	}
	s.announce(ctx, orgID, collection)
	return created, nil
}

func (s *PublishingStore) Update(ctx context.Context, orgID, collection, id string, patch entities.Document) (entities.Document, error) {
	updated, err := s.IRecordStore.Update(ctx, orgID, collection, id, patch)
	if err != nil || updated == nil {
		return updated, err
	}
	s.announce(ctx, orgID, collection)
	return updated, nil
}

func (s *PublishingStore) Delete(ctx context.Context, orgID, collection, id string) error {
	if err := s.IRecordStore.Delete(ctx, orgID, collection, id); err != nil {
		return err
	}
	s.announce(ctx, orgID, collection)
	return nil
}

func (s *PublishingStore) announce(ctx context.Context, orgID, collection string) {
	if err := s.publisher.PublishCollection(ctx, orgID, collection); err != nil {
		s.logger.Warn("publish change failed", zap.String("org_id", orgID), zap.String("collection", collection), zap.Error(err))
	}
}
