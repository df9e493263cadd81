package shutdown

//go:generate mockgen -source=interfaces.go -destination=../mock/closer_mock.go -package=mock

import "context"

// Closer is anything the shutdown sequence drains. [server.Handle] is the
// production implementation.
type Closer interface {
	// Close drains the resource and blocks until draining completes or ctx
	// is done. It must be safe to call more than once.
	Close(ctx context.Context) error
}
