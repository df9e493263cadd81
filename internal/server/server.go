package server

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	httphandler "github.com/MKhiriev/go-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/shutdown"
)

// Options are the per-start settings of a server.
type Options struct {
	// Port to bind. Zero means the configured port; when that is zero too
	// the system picks a free one.
	Port int
}

// Manager starts HTTP servers serving one route provider.
type Manager struct {
	cfg         *config.StructuredConfig
	routes      httphandler.RouteProvider
	seed        SeedFunc
	coordinator *shutdown.Coordinator
	logger      *logger.Logger
}

// NewManager creates a Manager. seed may be nil.
func NewManager(
	cfg *config.StructuredConfig,
	routes httphandler.RouteProvider,
	seed SeedFunc,
	coordinator *shutdown.Coordinator,
	logger *logger.Logger,
) *Manager {
	logger.Info().Msg("creating new server manager...")
	return &Manager{
		cfg:         cfg,
		routes:      routes,
		seed:        seed,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Start mounts the routes under /api and binds the listening socket.
//
// Only after a successful bind does it run the seed hook in the background,
// log readiness and register the server with the shutdown coordinator, so
// that every termination trigger drains it. A bind failure is returned
// wrapped in [ErrBind]; in that case the seed hook is never called and
// nothing is registered.
func (m *Manager) Start(ctx context.Context, opts Options) (*Handle, error) {
	port := opts.Port
	if port == 0 {
		port = m.cfg.Server.Port
	}
	addr := net.JoinHostPort(m.cfg.Server.Host, strconv.Itoa(port))

	router := httphandler.NewHandler(m.routes, m.cfg, m.logger).Init()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		m.logger.Error().Err(err).Str("addr", addr).Msg("error binding server")
		return nil, fmt.Errorf("%w on %s: %w", ErrBind, addr, err)
	}

	h := newHandle(ln, router, m.cfg.Server, m.logger)
	go h.serve(m.coordinator)

	if m.seed != nil {
		go func() {
			defer m.coordinator.Recover()
			m.seed(ctx)
		}()
	}

	m.logger.Info().Int("port", h.Port).Msgf("Listening on port %d", h.Port)

	h.stop = m.coordinator.Wrap(h.rawStop)
	m.coordinator.Register(h)

	return h, nil
}
