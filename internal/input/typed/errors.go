package typed

import "errors"

// Pipeline errors.
var (
	// ErrNoHandler indicates the pipeline has no handler installed.
	ErrNoHandler = errors.New("typed: no handler installed")

	// ErrInvalidMode indicates an unknown marker handler mode.
	ErrInvalidMode = errors.New("typed: invalid mode")
)
