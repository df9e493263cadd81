package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/handler/api"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/server"
	"github.com/MKhiriev/go-bootstrap/internal/service"
	"github.com/MKhiriev/go-bootstrap/internal/shutdown"
	"github.com/MKhiriev/go-bootstrap/internal/store"
	"github.com/MKhiriev/go-bootstrap/internal/workers"
	"github.com/MKhiriev/go-bootstrap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-bootstrap-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled
	log.Debug().Any("config", cfg).Msg("received configs")

	coordinator := shutdown.NewCoordinator(log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coordinator.Listen(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	jobs := workers.NewWorkers(log,
		workers.NewMigrationWorker(storages),
		workers.NewSeedWorker(store.NewSeeder(storages, log)),
	)

	manager := server.NewManager(cfg, api.NewRoutes(services, cfg.App, log), jobs.Run, coordinator, log)
	handle, err := manager.Start(ctx, server.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}

	// closed after the server so in-flight requests still reach the database
	coordinator.Register(storages)

	// Done closes as soon as a drain begins, not when it ends. Cancelling ctx
	// then fires a normal-exit sequence next to the one already running; it
	// waits on the same single drain and closing storages twice is a no-op.
	// Wait returns once every sequence has finished.
	<-handle.Done()
	cancel()
	coordinator.Wait()
}
