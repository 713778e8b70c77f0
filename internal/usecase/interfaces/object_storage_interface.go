package interfaces

import (
	"context"
	"errors"

	"gestorpro/internal/domain/entities"
)

var ErrObjectNotFound = errors.New("object not found")

// IObjectStorage stores write-once blobs under deterministic paths.
// Delete returns ErrObjectNotFound when nothing is stored at path.
type IObjectStorage interface {
	Put(ctx context.Context, path string, upload entities.Upload) (url string, err error)
	Delete(ctx context.Context, path string) error
}
