package store

import (
	"context"

	"github.com/MKhiriev/go-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository stores items.
type ItemRepository interface {
	// List returns every item ordered by creation time.
	List(ctx context.Context) ([]models.Item, error)

	// Get returns the item with the given id or [ErrItemNotFound].
	Get(ctx context.Context, id string) (models.Item, error)

	// Create stores a new item. An existing id yields [ErrItemAlreadyExists].
	Create(ctx context.Context, item models.Item) error

	// InsertMissing stores the items whose ids are not present yet and
	// reports how many were inserted.
	InsertMissing(ctx context.Context, items ...models.Item) (int64, error)
}
