package handler

import "fmt"

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	Status ResultStatus

	// Error is set when Status is StatusError.
	Error error

	// Message is an optional status line message.
	Message string

	// Redraw asks the host to repaint the editor.
	Redraw bool
}

// Success returns a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a result indicating nothing changed.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage returns a no-op result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error returns an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

// WithMessage returns the result with a message set.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithRedraw returns the result with a full redraw requested.
func (r Result) WithRedraw() Result {
	r.Redraw = true
	return r
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Err returns the result's error, or nil for non-error results.
func (r Result) Err() error {
	if r.Status != StatusError {
		return nil
	}
	if r.Error == nil {
		return fmt.Errorf("action failed: %s", r.Message)
	}
	return r.Error
}
