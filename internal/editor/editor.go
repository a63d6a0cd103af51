// Package editor holds the open editor and project handles that commands
// operate on.
package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/edbasics/internal/engine/buffer"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

// Editor is an open text buffer together with its caret model.
type Editor struct {
	id      uuid.UUID
	path    string
	name    string
	buf     *buffer.Buffer
	cursors *cursor.CursorSet

	readOnly atomic.Bool
	modified atomic.Bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithPath records the file path the editor was loaded from.
func WithPath(path string) Option {
	return func(e *Editor) {
		e.path = path
		e.name = filepath.Base(path)
	}
}

// WithReadOnly marks the editor read-only.
func WithReadOnly(readOnly bool) Option {
	return func(e *Editor) {
		e.readOnly.Store(readOnly)
	}
}

// WithCursors replaces the initial caret model.
func WithCursors(cs *cursor.CursorSet) Option {
	return func(e *Editor) {
		e.cursors = cs
	}
}

// New creates an editor over content with a single caret at offset 0.
func New(content string, opts ...Option) *Editor {
	e := &Editor{
		id:      uuid.New(),
		name:    "Untitled",
		buf:     buffer.NewBufferFromString(content),
		cursors: cursor.NewCursorSetAt(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open reads path into a new editor.
func Open(path string, opts ...Option) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return New(string(data), append([]Option{WithPath(abs)}, opts...)...), nil
}

// ID returns the editor's unique identifier.
func (e *Editor) ID() uuid.UUID { return e.id }

// Path returns the file path, or "" for scratch editors.
func (e *Editor) Path() string { return e.path }

// Name returns the display name.
func (e *Editor) Name() string { return e.name }

// Buffer returns the document text.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Cursors returns the caret model.
func (e *Editor) Cursors() *cursor.CursorSet { return e.cursors }

// IsReadOnly reports whether the editor rejects edits.
func (e *Editor) IsReadOnly() bool { return e.readOnly.Load() }

// SetReadOnly changes the read-only flag.
func (e *Editor) SetReadOnly(readOnly bool) { e.readOnly.Store(readOnly) }

// IsModified reports whether the text changed since load.
func (e *Editor) IsModified() bool { return e.modified.Load() }

// Insert inserts text at offset, failing with ErrReadOnly on read-only editors.
func (e *Editor) Insert(offset buffer.ByteOffset, text string) (buffer.ByteOffset, error) {
	if e.IsReadOnly() {
		return 0, ErrReadOnly
	}
	end, err := e.buf.Insert(offset, text)
	if err != nil {
		return 0, err
	}
	e.modified.Store(true)
	return end, nil
}

// CaretPoint returns the line/column of a caret's head.
func (e *Editor) CaretPoint(sel cursor.Selection) buffer.Point {
	return e.buf.OffsetToPoint(sel.Head)
}
