package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoScreen indicates Run was called before Init.
	ErrNoScreen = errors.New("screen not initialized")
)

// InitError reports a component that failed during bootstrap.
type InitError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}
