// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Daemon connection
	OpConnect Op = "connect to daemon"
	OpRefresh Op = "refresh state"
	OpWatch   Op = "watch daemon events"

	// Player commands
	OpTogglePause Op = "toggle pause"
	OpVolume      Op = "change volume"
	OpSwitch      Op = "switch track"
	OpSelect      Op = "play selection"

	// Persisted session
	OpStateLoad Op = "load session state"
	OpStateSave Op = "save session state"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// Wrap annotates err with the operation, keeping it inspectable with errors.Is/As.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// OpError is an error tagged with the user-facing operation that failed.
type OpError struct {
	Op  Op
	Err error
}

func (e *OpError) Error() string { return string(e.Op) + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// OpOf returns the operation attached by Wrap, if any.
func OpOf(err error) (Op, bool) {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Op, true
	}
	return "", false
}
