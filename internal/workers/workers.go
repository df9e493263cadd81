package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  logger,
	}
}

// Run runs every worker in order and stops at the first failure. Failures
// are logged, not returned: nothing waits for the workers.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		log := w.logger.With().Str("worker", worker.Name()).Logger()

		start := time.Now()
		if err := worker.Run(ctx); err != nil {
			log.Error().Err(err).Msg("worker failed, skipping the remaining workers")
			return
		}
		log.Info().Dur("duration", time.Since(start)).Msg("worker finished")
	}
}
