package interfaces

import (
	"context"

	"gestorpro/internal/domain/entities"
)

// IRecordStore abstracts the per-organization document store.
//
// Collections are addressed by path inside the organization namespace, either a
// top-level name ("payments") or a subcollection ("rentals/r1/generatedContracts").
// Get and Update return a nil document and a nil error when the record does not exist.
type IRecordStore interface {
	Create(ctx context.Context, orgID, collection string, doc entities.Document) (entities.Document, error)
	Get(ctx context.Context, orgID, collection, id string) (entities.Document, error)
	Update(ctx context.Context, orgID, collection, id string, patch entities.Document) (entities.Document, error)
	Delete(ctx context.Context, orgID, collection, id string) error
	List(ctx context.Context, orgID, collection string, q entities.Query) ([]entities.Document, error)
}

// ISnapshotFeed delivers full collection snapshots: once after Watch returns and again
// after every change. Deliveries for one subscription never overlap. The returned
// function cancels the subscription; no callback runs after it returns.
type ISnapshotFeed interface {
	Watch(ctx context.Context, orgID, collection string, onSnapshot func([]entities.Document), onError func(error)) (func(), error)
	WatchOrganization(ctx context.Context, orgID string, onChange func(entities.Organization), onError func(error)) (func(), error)
}

// IChangePublisher announces that a collection (or the organization settings) changed.
type IChangePublisher interface {
	PublishCollection(ctx context.Context, orgID, collection string) error
	PublishOrganization(ctx context.Context, orgID string) error
}
