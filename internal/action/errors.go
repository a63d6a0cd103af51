package action

import "errors"

// Manager errors.
var (
	// ErrUnknownCommand indicates no command is registered under an id.
	ErrUnknownCommand = errors.New("action: unknown command")

	// ErrDisabled indicates the command is not enabled in the given context.
	ErrDisabled = errors.New("action: command is disabled")

	// ErrDuplicateCommand indicates a command id is already registered.
	ErrDuplicateCommand = errors.New("action: duplicate command")

	// ErrUnknownImplementation indicates a manifest names an unknown implementation.
	ErrUnknownImplementation = errors.New("action: unknown implementation")
)
