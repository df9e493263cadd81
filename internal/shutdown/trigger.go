package shutdown

import (
	"os"
	"syscall"
)

// Trigger is a process-level event that causes the server to shut down.
type Trigger int

const (
	// TriggerExit is a normal exit: the context passed to Listen is done.
	TriggerExit Trigger = iota
	// TriggerInterrupt is SIGINT (Ctrl+C).
	TriggerInterrupt
	// TriggerUser1 is SIGUSR1, sent by process supervisors on restart.
	TriggerUser1
	// TriggerUser2 is SIGUSR2.
	TriggerUser2
	// TriggerTerminate is SIGTERM ("kill pid", container stop).
	TriggerTerminate
	// TriggerUncaught is a failure nobody handled: a serve loop error or a
	// recovered panic.
	TriggerUncaught
)

var triggerNames = map[Trigger]string{
	TriggerExit:      "exit",
	TriggerInterrupt: "interrupt",
	TriggerUser1:     "user1",
	TriggerUser2:     "user2",
	TriggerTerminate: "terminate",
	TriggerUncaught:  "uncaught",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return "unknown"
}

// ExitCode is the status the process exits with after the shutdown sequence
// run for t.
func (t Trigger) ExitCode() int {
	if t == TriggerUncaught {
		return 1
	}
	return 0
}

// ExitPolicy reports whether the process must be terminated once the
// shutdown sequence for a trigger has completed.
type ExitPolicy func(Trigger) bool

// DefaultExitPolicy exits for every trigger except a normal exit, where the
// process is already on its way out.
func DefaultExitPolicy(t Trigger) bool {
	return t != TriggerExit
}

// handledSignals are the signals a Coordinator subscribes to.
var handledSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGUSR1,
	syscall.SIGUSR2,
	syscall.SIGTERM,
}

func triggerFromSignal(sig os.Signal) (Trigger, bool) {
	switch sig {
	case os.Interrupt:
		return TriggerInterrupt, true
	case syscall.SIGUSR1:
		return TriggerUser1, true
	case syscall.SIGUSR2:
		return TriggerUser2, true
	case syscall.SIGTERM:
		return TriggerTerminate, true
	}
	return 0, false
}
