package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/models"
)

// itemRepository is the SQL implementation of [ItemRepository].
type itemRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err = rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *itemRepository) Get(ctx context.Context, id string) (models.Item, error) {
	query, args, err := buildGetItemQuery(r.db.builder(), id)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Item{}, ErrItemNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.Get").Msg("error scanning row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemRepository) Create(ctx context.Context, item models.Item) error {
	query, args, err := buildInsertItemsQuery(r.db.builder(), false, item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrItemAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.Create").Msg("error inserting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *itemRepository) InsertMissing(ctx context.Context, items ...models.Item) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	query, args, err := buildInsertItemsQuery(r.db.builder(), true, items...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
