package shutdown

import (
	"os"
	"os/signal"
)

// Notifier subscribes channels to process signals. It matches the shape of
// signal.Notify / signal.Stop so tests can deliver signals without touching
// the process.
type Notifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

// osNotifier delivers real process signals.
type osNotifier struct{}

func (osNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (osNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}
