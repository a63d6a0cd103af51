package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEditor indicates an editor is required but not set.
	ErrMissingEditor = errors.New("execution context: editor is required")

	// ErrMissingProject indicates a project is required but not set.
	ErrMissingProject = errors.New("execution context: project is required")
)
