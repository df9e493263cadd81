package shutdown

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// safeBuffer is a bytes.Buffer shared by the logger of concurrent shutdown
// sequences.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// fakeNotifier delivers signals sent by the test instead of the OS.
type fakeNotifier struct {
	mu         sync.Mutex
	subs       []chan<- os.Signal
	registered []os.Signal
}

func (n *fakeNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, c)
	n.registered = append(n.registered, sig...)
}

func (n *fakeNotifier) Stop(c chan<- os.Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, sub := range n.subs {
		if sub == c {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

func (n *fakeNotifier) send(sig os.Signal) {
	n.mu.Lock()
	subs := append([]chan<- os.Signal(nil), n.subs...)
	n.mu.Unlock()

	for _, c := range subs {
		c <- sig
	}
}

func (n *fakeNotifier) subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// exitRecorder replaces os.Exit.
type exitRecorder struct {
	codes chan int
}

func newExitRecorder() *exitRecorder {
	return &exitRecorder{codes: make(chan int, 16)}
}

func (e *exitRecorder) exit(code int) {
	e.codes <- code
}

func (e *exitRecorder) next(t *testing.T) int {
	t.Helper()
	select {
	case code := <-e.codes:
		return code
	case <-time.After(2 * time.Second):
		t.Fatal("exit was not called")
		return -1
	}
}

// drainCounter is a Closer whose drain runs through Once, like a server
// handle does.
type drainCounter struct {
	closes atomic.Int32
	drains atomic.Int32
	stop   StopFunc
}

func newDrainCounter(drainErr error) *drainCounter {
	d := &drainCounter{}
	d.stop = Once(func(done func(error)) {
		d.drains.Add(1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			done(drainErr)
		}()
	})
	return d
}

func (d *drainCounter) Close(ctx context.Context) error {
	d.closes.Add(1)
	return d.stop(ctx)
}

type fixture struct {
	coordinator *Coordinator
	notifier    *fakeNotifier
	exits       *exitRecorder
	logs        *safeBuffer
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		notifier: &fakeNotifier{},
		exits:    newExitRecorder(),
		logs:     &safeBuffer{},
	}
	opts = append([]Option{WithNotifier(f.notifier), WithExit(f.exits.exit)}, opts...)
	f.coordinator = NewCoordinator(logger.New("test", f.logs), opts...)
	return f
}

// listen starts dispatching and makes sure the dispatcher and every shutdown
// sequence are finished when the test ends.
func (f *fixture) listen(t *testing.T) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	f.coordinator.Listen(ctx)
	t.Cleanup(func() {
		cancel()
		f.coordinator.Wait()
	})
	return cancel
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestCoordinator_ListenSubscribesToHandledSignals(t *testing.T) {
	f := newFixture(t)
	f.listen(t)

	f.notifier.mu.Lock()
	defer f.notifier.mu.Unlock()
	assert.ElementsMatch(t, handledSignals, f.notifier.registered)
}

func TestCoordinator_InterruptDrainsAndExits(t *testing.T) {
	f := newFixture(t)
	closer := newDrainCounter(nil)
	f.coordinator.Register(closer)
	f.listen(t)

	f.notifier.send(os.Interrupt)

	assert.Equal(t, 0, f.exits.next(t))
	assert.EqualValues(t, 1, closer.drains.Load())

	logs := f.logs.String()
	assert.Contains(t, logs, "server successfully closed")
	assert.Contains(t, logs, `"trigger":"interrupt"`)
}

func TestCoordinator_DrainFailureLogsWarningAndStillExits(t *testing.T) {
	f := newFixture(t)
	f.coordinator.Register(newDrainCounter(errors.New("connections did not finish")))
	f.listen(t)

	f.notifier.send(syscall.SIGUSR1)

	assert.Equal(t, 0, f.exits.next(t))
	logs := f.logs.String()
	assert.Contains(t, logs, "something went wrong closing the server")
	assert.Contains(t, logs, "connections did not finish")
	assert.Contains(t, logs, `"level":"warn"`)
}

func TestCoordinator_ConcurrentTriggersDrainOnce(t *testing.T) {
	f := newFixture(t)
	closer := newDrainCounter(nil)
	f.coordinator.Register(closer)
	f.listen(t)

	f.notifier.send(os.Interrupt)
	f.coordinator.Fail(errors.New("serve loop broke"))
	f.notifier.send(syscall.SIGUSR2)
	f.notifier.send(syscall.SIGTERM)

	codes := []int{f.exits.next(t), f.exits.next(t), f.exits.next(t), f.exits.next(t)}
	assert.ElementsMatch(t, []int{0, 0, 0, 1}, codes)
	assert.EqualValues(t, 4, closer.closes.Load())
	assert.EqualValues(t, 1, closer.drains.Load(), "the underlying drain runs exactly once")
}

func TestCoordinator_NormalExitDrainsWithoutTerminating(t *testing.T) {
	f := newFixture(t)
	closer := newDrainCounter(nil)
	f.coordinator.Register(closer)

	ctx, cancel := context.WithCancel(context.Background())
	f.coordinator.Listen(ctx)

	cancel()
	f.coordinator.Wait()

	assert.EqualValues(t, 1, closer.drains.Load())
	assert.Empty(t, f.exits.codes)
	assert.Contains(t, f.logs.String(), `"trigger":"exit"`)
	assert.Zero(t, f.notifier.subscribers(), "subscription is released once dispatching ends")
}

func TestCoordinator_RecoverReportsPanicAsUncaught(t *testing.T) {
	f := newFixture(t)
	f.coordinator.Register(newDrainCounter(nil))
	f.listen(t)

	go func() {
		defer f.coordinator.Recover()
		panic("seed exploded")
	}()

	assert.Equal(t, 1, f.exits.next(t))
	logs := f.logs.String()
	assert.Contains(t, logs, "panic: seed exploded")
	assert.Contains(t, logs, `"stack":`)
	assert.Contains(t, logs, `"trigger":"uncaught"`)
}

func TestCoordinator_FailBeforeListenIsDelivered(t *testing.T) {
	f := newFixture(t)
	f.coordinator.Register(newDrainCounter(nil))

	f.coordinator.Fail(errors.New("early failure"))
	f.listen(t)

	assert.Equal(t, 1, f.exits.next(t))
}

func TestCoordinator_FailNeverBlocks(t *testing.T) {
	f := newFixture(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 10 {
			f.coordinator.Fail(errors.New("nobody is listening"))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Fail blocked without a dispatcher")
	}
	assert.Contains(t, f.logs.String(), "uncaught failure while another one is pending")
}

func TestCoordinator_StopReleasesSubscription(t *testing.T) {
	f := newFixture(t)
	closer := newDrainCounter(nil)
	f.coordinator.Register(closer)
	f.listen(t)

	f.coordinator.Stop()
	f.coordinator.Wait()

	assert.Zero(t, f.notifier.subscribers())
	assert.Zero(t, closer.drains.Load())
	assert.Empty(t, f.exits.codes)
}

func TestCoordinator_InstancesAreIsolated(t *testing.T) {
	first := newFixture(t)
	second := newFixture(t)

	firstCloser := newDrainCounter(nil)
	secondCloser := newDrainCounter(nil)
	first.coordinator.Register(firstCloser)
	second.coordinator.Register(secondCloser)

	first.listen(t)
	second.listen(t)

	first.notifier.send(os.Interrupt)
	assert.Equal(t, 0, first.exits.next(t))

	second.coordinator.Stop()
	second.coordinator.Wait()

	assert.EqualValues(t, 1, firstCloser.drains.Load())
	assert.Zero(t, secondCloser.drains.Load())
	assert.Empty(t, second.exits.codes)
}

func TestCoordinator_CustomExitPolicy(t *testing.T) {
	f := newFixture(t, WithExitPolicy(func(Trigger) bool { return false }))
	closer := newDrainCounter(nil)
	f.coordinator.Register(closer)
	cancel := f.listen(t)

	f.notifier.send(os.Interrupt)
	cancel()
	f.coordinator.Wait()

	assert.EqualValues(t, 1, closer.drains.Load())
	assert.Empty(t, f.exits.codes)
}

func TestCoordinator_NoClosersRegistered(t *testing.T) {
	f := newFixture(t)
	f.listen(t)

	f.notifier.send(syscall.SIGTERM)

	assert.Equal(t, 0, f.exits.next(t))
	assert.Contains(t, f.logs.String(), ErrNoClosersRegistered.Error())
}

func TestCoordinator_DrainsEveryRegisteredCloser(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock.NewMockCloser(ctrl)
	second := mock.NewMockCloser(ctrl)

	gomock.InOrder(
		first.EXPECT().Close(gomock.Any()).Return(nil),
		second.EXPECT().Close(gomock.Any()).Return(errors.New("second failed")),
	)

	f := newFixture(t)
	f.coordinator.Register(first)
	f.coordinator.Register(second)
	f.listen(t)

	f.notifier.send(syscall.SIGTERM)

	require.Equal(t, 0, f.exits.next(t))

	// stop before cleanup so the normal-exit trigger does not close again
	f.coordinator.Stop()
	f.coordinator.Wait()

	logs := f.logs.String()
	assert.Contains(t, logs, "server successfully closed")
	assert.Contains(t, logs, "second failed")
}

func TestCoordinator_Wrap(t *testing.T) {
	f := newFixture(t)

	var raws atomic.Int32
	stop := f.coordinator.Wrap(func(done func(error)) {
		raws.Add(1)
		done(nil)
	})

	require.NoError(t, stop(context.Background()))
	require.NoError(t, stop(context.Background()))
	assert.EqualValues(t, 1, raws.Load())
	assert.Contains(t, f.logs.String(), "draining server")
}
