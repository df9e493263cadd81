package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/store"
	"github.com/MKhiriev/go-bootstrap/internal/validators"
	"github.com/MKhiriev/go-bootstrap/models"
)

type itemService struct {
	repository store.ItemRepository
	validator  validators.Validator
	ids        IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewItemService(repository store.ItemRepository, ids IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		repository: repository,
		validator:  validators.NewItemValidator(),
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.repository.List(ctx)
}

func (s *itemService) GetItem(ctx context.Context, id string) (models.Item, error) {
	return s.repository.Get(ctx, id)
}

// CreateItem validates req and stores it under a fresh id.
func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	item := models.Item{
		ID:          s.ids.Generate(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repository.Create(ctx, item); err != nil {
		return models.Item{}, err
	}

	logger.FromContext(ctx).Debug().Str("item_id", item.ID).Msg("item created")
	return item, nil
}
