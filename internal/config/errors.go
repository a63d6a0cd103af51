package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrInvalidLogLevel indicates an unknown logging level.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidValue indicates an environment value of the wrong type.
	ErrInvalidValue = errors.New("config: invalid value")
)

// ParseError describes a malformed configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the 1-based line of the error, or 0 if unknown.
	Line int
	// Column is the 1-based column of the error, or 0 if unknown.
	Column int
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
