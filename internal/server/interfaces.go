package server

import "context"

// Server defines the lifecycle contract of a started server.
type Server interface {
	// Close drains the server. Every call waits for the same drain and
	// returns its result; the drain itself runs once.
	Close(ctx context.Context) error

	// Done is closed when the serve loop has ended.
	Done() <-chan struct{}
}

// SeedFunc populates initial data. It runs in its own goroutine after the
// server is bound and nothing waits for it; a panic is reported to the
// shutdown coordinator as an uncaught failure.
type SeedFunc func(ctx context.Context)

var _ Server = (*Handle)(nil)
