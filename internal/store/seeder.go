package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/models"
)

// seedItems are the items present on a fresh install. Their ids are fixed so
// that seeding again inserts nothing.
var seedItems = []models.Item{
	{ID: "0192f5a4-6c1e-7d3a-9b1f-2a4c6e8f0a01", Name: "Welcome", Description: "Your server is up and running."},
	{ID: "0192f5a4-6c1e-7d3a-9b1f-2a4c6e8f0a02", Name: "Health", Description: "GET /api/health reports liveness."},
	{ID: "0192f5a4-6c1e-7d3a-9b1f-2a4c6e8f0a03", Name: "Version", Description: "GET /api/version reports the build."},
}

var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// Seeder inserts the initial items. Transient database errors are retried.
type Seeder struct {
	repository  ItemRepository
	classifier  ErrorClassificator
	retryDelays []time.Duration
	now         func() time.Time

	logger *logger.Logger
}

// NewSeeder creates a Seeder writing to storages' item repository.
func NewSeeder(storages *Storages, logger *logger.Logger) *Seeder {
	return &Seeder{
		repository:  storages.ItemRepository,
		classifier:  storages.ErrorClassificator,
		retryDelays: defaultRetryDelays,
		now:         time.Now,
		logger:      logger,
	}
}

// Seed inserts every initial item that is not stored yet.
func (s *Seeder) Seed(ctx context.Context) error {
	now := s.now().UTC()
	items := make([]models.Item, len(seedItems))
	for i, item := range seedItems {
		item.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		items[i] = item
	}

	for attempt := 0; ; attempt++ {
		inserted, err := s.repository.InsertMissing(ctx, items...)
		if err == nil {
			s.logger.Info().Int64("inserted", inserted).Int("total", len(items)).Msg("items seeded")
			return nil
		}

		if !s.retryable(err) || attempt >= len(s.retryDelays) {
			return fmt.Errorf("error seeding items: %w", err)
		}

		delay := s.retryDelays[attempt]
		s.logger.Warn().Err(err).Dur("retry_in", delay).Msg("seeding failed, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("error seeding items: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
}

func (s *Seeder) retryable(err error) bool {
	return s.classifier != nil && s.classifier.Classify(err) == Retryable
}
