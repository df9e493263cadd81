package shutdown

import (
	"context"
	"sync"
)

// RawStop is a callback-style stop primitive: calling it begins draining and
// done is invoked when draining has finished, with a non-nil error if it
// failed.
type RawStop func(done func(error))

// StopFunc is the awaitable form of a [RawStop].
type StopFunc func(ctx context.Context) error

// future is a one-shot result. settle may be called any number of times,
// only the first value is kept.
type future struct {
	settleOnce sync.Once
	done       chan struct{}
	err        error
}

func newFuture() *future {
	return &future{done: make(chan struct{})}
}

func (f *future) settle(err error) {
	f.settleOnce.Do(func() {
		f.err = err
		close(f.done)
	})
}

// wait blocks until the future is settled or ctx is done. Cancelling ctx
// abandons the wait only, the pending operation keeps running.
func (f *future) wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Once turns raw into a [StopFunc] guarded by an "already stopping" latch.
//
// The first call invokes raw. Every call, including concurrent ones and
// calls made after draining finished, waits for that single invocation and
// returns its result. raw is never invoked twice.
func Once(raw RawStop) StopFunc {
	var (
		start  sync.Once
		result = newFuture()
	)

	return func(ctx context.Context) error {
		start.Do(func() {
			raw(result.settle)
		})

		return result.wait(ctx)
	}
}
