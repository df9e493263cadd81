package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/shutdown"
)

// Handle is a started server.
type Handle struct {
	// Port is the port actually bound.
	Port int
	// Addr is the listener's address.
	Addr string

	server       *http.Server
	listener     net.Listener
	drainTimeout time.Duration

	stop shutdown.StopFunc
	done chan struct{}

	logger *logger.Logger
}

func newHandle(ln net.Listener, handler http.Handler, cfg config.Server, logger *logger.Logger) *Handle {
	h := &Handle{
		Addr:         ln.Addr().String(),
		listener:     ln,
		drainTimeout: cfg.ShutdownTimeout,
		done:         make(chan struct{}),
		logger:       logger,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
	}
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		h.Port = tcpAddr.Port
	}
	return h
}

// Close stops accepting connections and waits for in-flight requests to
// finish. Concurrent and repeated calls share a single drain. Cancelling ctx
// only stops this caller's wait.
func (h *Handle) Close(ctx context.Context) error {
	return h.stop(ctx)
}

// Done is closed once the serve loop has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) serve(coordinator *shutdown.Coordinator) {
	defer close(h.done)

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		coordinator.Fail(fmt.Errorf("%w on %s: %w", ErrServe, h.Addr, err))
	}
}

// rawStop is the callback-style stop primitive: it starts the drain and
// reports its outcome through done. Connections still open when the drain
// timeout expires are closed forcibly.
func (h *Handle) rawStop(done func(error)) {
	go func() {
		ctx := context.Background()
		if h.drainTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.drainTimeout)
			defer cancel()
		}

		err := h.server.Shutdown(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			h.logger.Warn().Dur("timeout", h.drainTimeout).Msg("drain timed out, closing remaining connections")
			err = errors.Join(err, h.server.Close())
		}
		done(err)
	}()
}
