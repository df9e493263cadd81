package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
)

type Storages struct {
	ItemRepository     ItemRepository
	ErrorClassificator ErrorClassificator

	db *DB
}

// NewStorages connects to the configured database. Without a DSN items are
// kept in memory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		logger.Warn().Msg("no database configured, items are kept in memory")
		return &Storages{ItemRepository: NewMemoryItemRepository(logger)}, nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	return newSQLStorages(db, logger), nil
}

func newSQLStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ItemRepository:     NewItemRepository(db, logger),
		ErrorClassificator: db.errorClassificator,
		db:                 db,
	}
}

// DB returns the database connection, or nil when items are kept in memory.
func (s *Storages) DB() *DB {
	return s.db
}

// Close closes the database connection, if any.
func (s *Storages) Close(context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
