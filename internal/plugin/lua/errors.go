package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrFunctionNotFound is returned when a called global is not a function.
	ErrFunctionNotFound = errors.New("lua function not found")
)
