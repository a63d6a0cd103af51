package plugin

import "errors"

// Validation errors.
var (
	ErrMissingName           = errors.New("manifest: name is required")
	ErrInvalidName           = errors.New("manifest: name must be lowercase alphanumeric with hyphens")
	ErrInvalidVersion        = errors.New("manifest: version must be valid semver")
	ErrMissingActionID       = errors.New("manifest: action id is required")
	ErrMissingActionLabel    = errors.New("manifest: action label is required")
	ErrMissingImplementation = errors.New("manifest: action implementation is required")
	ErrDuplicateActionID     = errors.New("manifest: duplicate action id")
)
