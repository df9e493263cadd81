package shutdown

import (
	"context"
	"errors"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
)

// Coordinator owns the process-level trigger subscriptions and the closers
// they drain. Build one per process; tests may build as many as they need
// since every subscription goes through the injected [Notifier].
type Coordinator struct {
	notifier Notifier
	exit     func(code int)
	policy   ExitPolicy
	logger   *logger.Logger

	mu      sync.Mutex
	closers []Closer

	signals  chan os.Signal
	failures chan error
	quit     chan struct{}
	stopped  chan struct{}

	listening  atomic.Bool
	listenOnce sync.Once
	stopOnce   sync.Once
	inflight   sync.WaitGroup
}

// Option configures a [Coordinator].
type Option func(*Coordinator)

// WithNotifier replaces the process signal subscription.
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) {
		c.notifier = n
	}
}

// WithExit replaces os.Exit.
func WithExit(exit func(code int)) Option {
	return func(c *Coordinator) {
		c.exit = exit
	}
}

// WithExitPolicy replaces [DefaultExitPolicy].
func WithExitPolicy(policy ExitPolicy) Option {
	return func(c *Coordinator) {
		c.policy = policy
	}
}

// NewCoordinator creates a Coordinator that reacts to real process signals
// and exits with os.Exit unless overridden by opts.
func NewCoordinator(logger *logger.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		notifier: osNotifier{},
		exit:     os.Exit,
		policy:   DefaultExitPolicy,
		logger:   logger,
		signals:  make(chan os.Signal, 1),
		failures: make(chan error, 1),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Wrap turns a callback-style stop primitive into the awaitable, at-most-once
// stop operation handed out on server handles.
func (c *Coordinator) Wrap(raw RawStop) StopFunc {
	return Once(func(done func(error)) {
		c.logger.Info().Msg("draining server")
		raw(done)
	})
}

// Register adds closer to the set drained by every trigger.
func (c *Coordinator) Register(closer Closer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closers = append(c.closers, closer)
}

func (c *Coordinator) registered() []Closer {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Closer(nil), c.closers...)
}

// Listen subscribes to the termination signals and starts dispatching
// triggers. Cancelling ctx fires [TriggerExit] and ends dispatching.
// Calls after the first are no-ops.
func (c *Coordinator) Listen(ctx context.Context) {
	c.listenOnce.Do(func() {
		c.listening.Store(true)
		c.notifier.Notify(c.signals, handledSignals...)
		go c.dispatch(ctx)
	})
}

func (c *Coordinator) dispatch(ctx context.Context) {
	defer close(c.stopped)
	defer c.notifier.Stop(c.signals)

	for {
		select {
		case sig := <-c.signals:
			if t, ok := triggerFromSignal(sig); ok {
				c.fire(t, nil)
			}
		case err := <-c.failures:
			c.fire(TriggerUncaught, err)
		case <-ctx.Done():
			c.fire(TriggerExit, nil)
			return
		case <-c.quit:
			return
		}
	}
}

// Fail reports an uncaught failure. It never blocks; when a failure is
// already pending the new one is only logged.
func (c *Coordinator) Fail(err error) {
	select {
	case c.failures <- err:
	default:
		c.logger.Error().Err(err).Msg("uncaught failure while another one is pending")
	}
}

// Recover reports a panic of the calling goroutine as an uncaught failure.
// It must be deferred directly:
//
//	go func() {
//	    defer coordinator.Recover()
//	    // ...
//	}()
func (c *Coordinator) Recover() {
	if r := recover(); r != nil {
		c.Fail(&PanicError{Value: r, Stack: debug.Stack()})
	}
}

// Stop drops the coordinator's signal subscription and ends dispatching
// without running a shutdown sequence.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.quit)
	})
}

// Wait blocks until dispatching has ended (ctx passed to Listen done, or
// Stop called) and every shutdown sequence already started has finished.
func (c *Coordinator) Wait() {
	if c.listening.Load() {
		<-c.stopped
	}
	c.inflight.Wait()
}

func (c *Coordinator) fire(t Trigger, cause error) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.runSequence(t, cause)
	}()
}

// runSequence drains every registered closer, logs the outcome and, when the
// exit policy asks for it, terminates the process.
func (c *Coordinator) runSequence(t Trigger, cause error) {
	log := c.logger.With().Str("trigger", t.String()).Logger()

	if cause != nil {
		event := log.Error().Err(cause)
		var panicErr *PanicError
		if errors.As(cause, &panicErr) {
			event = event.Str("stack", string(panicErr.Stack))
		}
		event.Msg("uncaught failure, shutting down")
	} else {
		log.Info().Msg("termination trigger received, shutting down")
	}

	closers := c.registered()
	if len(closers) == 0 {
		log.Warn().Err(ErrNoClosersRegistered).Msg("nothing to close")
	}

	for _, closer := range closers {
		if err := closer.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("something went wrong closing the server")
			continue
		}
		log.Info().Msg("server successfully closed")
	}

	if c.policy(t) {
		log.Info().Int("code", t.ExitCode()).Msg("exiting")
		c.exit(t.ExitCode())
	}
}
