package editor

import "errors"

// ErrReadOnly is returned when editing a read-only editor.
var ErrReadOnly = errors.New("editor: buffer is read-only")
