package buffer

import "errors"

// Buffer errors.
var (
	// ErrOffsetOutOfRange is returned when an edit offset lies outside the text.
	ErrOffsetOutOfRange = errors.New("buffer: offset out of range")

	// ErrInvalidRange is returned when a range has Start > End.
	ErrInvalidRange = errors.New("buffer: invalid range")
)
