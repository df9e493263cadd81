package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path every RouteProvider is mounted under.
const APIPrefix = "/api"

// Init builds the request pipeline.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withErrorHandling)
	router.Use(withRequestTimeout(h.requestTimeout))

	router.Mount(APIPrefix, h.routes.Routes())

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
