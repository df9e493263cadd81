package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
)

// RouteProvider supplies the routes mounted under /api.
type RouteProvider interface {
	Routes() http.Handler
}

type Handler struct {
	routes    RouteProvider
	formatter *ErrorFormatter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(routes RouteProvider, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		routes:         routes,
		formatter:      NewErrorFormatter(cfg.App, logger),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
