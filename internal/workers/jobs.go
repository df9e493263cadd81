package workers

import (
	"context"

	"github.com/MKhiriev/go-bootstrap/internal/store"
)

// MigrationWorker applies the schema migrations. It does nothing when items
// are kept in memory.
type MigrationWorker struct {
	storages *store.Storages
}

func NewMigrationWorker(storages *store.Storages) *MigrationWorker {
	return &MigrationWorker{storages: storages}
}

func (w *MigrationWorker) Name() string { return "migrate" }

func (w *MigrationWorker) Run(ctx context.Context) error {
	db := w.storages.DB()
	if db == nil {
		return nil
	}
	return db.Migrate(ctx)
}

// SeedWorker inserts the initial items.
type SeedWorker struct {
	seeder *store.Seeder
}

func NewSeedWorker(seeder *store.Seeder) *SeedWorker {
	return &SeedWorker{seeder: seeder}
}

func (w *SeedWorker) Name() string { return "seed" }

func (w *SeedWorker) Run(ctx context.Context) error {
	return w.seeder.Seed(ctx)
}
