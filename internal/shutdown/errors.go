package shutdown

import (
	"errors"
	"fmt"
)

var (
	// ErrNoClosersRegistered is logged when a trigger fires before any
	// server handle was registered.
	ErrNoClosersRegistered = errors.New("no closers registered")
)

// PanicError is an uncaught failure recovered from a panicking goroutine.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the goroutine stack captured at recovery time.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
