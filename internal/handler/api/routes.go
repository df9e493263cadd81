package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	httphandler "github.com/MKhiriev/go-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/service"
)

// Routes is the RouteProvider of the server.
type Routes struct {
	services   *service.Services
	production bool

	logger *logger.Logger
}

var _ httphandler.RouteProvider = (*Routes)(nil)

func NewRoutes(services *service.Services, cfg config.App, logger *logger.Logger) *Routes {
	return &Routes{
		services:   services,
		production: cfg.IsProduction(),
		logger:     logger,
	}
}

func (rt *Routes) Routes() http.Handler {
	router := chi.NewRouter()

	router.Get("/health", httphandler.Func(rt.health))
	router.Get("/version", httphandler.Func(rt.version))

	router.Route("/items", func(r chi.Router) {
		r.Get("/", httphandler.Func(rt.listItems))
		r.Post("/", httphandler.Func(rt.createItem))
		r.Get("/{id}", httphandler.Func(rt.getItem))
	})

	if !rt.production {
		router.Get("/boom", httphandler.Func(boom))
	}

	return router
}
