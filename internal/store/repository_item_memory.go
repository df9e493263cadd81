package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/models"
)

// memoryItemRepository keeps items in process memory. It is used when no
// database is configured.
type memoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.Item
}

func NewMemoryItemRepository(logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating in-memory item repository")
	return &memoryItemRepository{
		items: make(map[string]models.Item),
	}
}

func (r *memoryItemRepository) List(context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b models.Item) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return items, nil
}

func (r *memoryItemRepository) Get(_ context.Context, id string) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	return item, nil
}

func (r *memoryItemRepository) Create(_ context.Context, item models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return ErrItemAlreadyExists
	}
	r.items[item.ID] = item
	return nil
}

func (r *memoryItemRepository) InsertMissing(_ context.Context, items ...models.Item) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var inserted int64
	for _, item := range items {
		if _, ok := r.items[item.ID]; ok {
			continue
		}
		r.items[item.ID] = item
		inserted++
	}
	return inserted, nil
}
