package dispatcher

import "errors"

// Registry errors.
var (
	// ErrHandlerNotFound indicates no handler is registered for an action.
	ErrHandlerNotFound = errors.New("dispatcher: no handler for action")

	// ErrInvalidAction indicates an empty action identifier.
	ErrInvalidAction = errors.New("dispatcher: invalid action")
)
