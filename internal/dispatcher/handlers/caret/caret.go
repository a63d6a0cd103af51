package caret

import (
	"unicode/utf8"

	"github.com/dshills/edbasics/internal/dispatcher"
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/dispatcher/handler"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/buffer"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

// CloneHandler clones a caret one line up or down.
type CloneHandler struct {
	below bool
}

// NewCloneBelowHandler creates the handler for editor.cloneCaretBelow.
func NewCloneBelowHandler() *CloneHandler {
	return &CloneHandler{below: true}
}

// NewCloneAboveHandler creates the handler for editor.cloneCaretAbove.
func NewCloneAboveHandler() *CloneHandler {
	return &CloneHandler{below: false}
}

// Execute implements handler.EditorActionHandler.
func (h *CloneHandler) Execute(ed *editor.Editor, caret cursor.Selection, _ *execctx.ExecutionContext) handler.Result {
	if ed == nil {
		return handler.Error(execctx.ErrMissingEditor)
	}
	buf := ed.Buffer()
	point := buf.OffsetToPoint(caret.Head)

	var target uint32
	if h.below {
		if point.Line+1 >= buf.LineCount() {
			return handler.NoOpWithMessage("no line below")
		}
		target = point.Line + 1
	} else {
		if point.Line == 0 {
			return handler.NoOpWithMessage("no line above")
		}
		target = point.Line - 1
	}

	// Columns are carried as character counts so the clone never lands
	// inside a multi-byte character.
	line := buf.LineText(point.Line)
	chars := utf8.RuneCountInString(line[:min(int(point.Column), len(line))])
	col := byteColumn(buf.LineText(target), chars)
	offset := buf.PointToOffset(buffer.Point{Line: target, Column: col})

	cs := ed.Cursors()
	before := cs.Count()
	cs.Add(cursor.NewCursorSelection(offset))
	if cs.Count() == before {
		return handler.NoOp().WithRedraw()
	}
	return handler.Success().WithRedraw()
}

// byteColumn returns the byte column of the chars-th character of line,
// clamped to the end of the line.
func byteColumn(line string, chars int) uint32 {
	for i := range line {
		if chars == 0 {
			return uint32(i)
		}
		chars--
	}
	return uint32(len(line))
}

// RemoveSecondaryHandler collapses the caret model to the primary caret.
type RemoveSecondaryHandler struct{}

// Execute implements handler.EditorActionHandler.
func (RemoveSecondaryHandler) Execute(ed *editor.Editor, _ cursor.Selection, _ *execctx.ExecutionContext) handler.Result {
	if ed == nil {
		return handler.Error(execctx.ErrMissingEditor)
	}
	cs := ed.Cursors()
	if !cs.IsMulti() {
		return handler.NoOp()
	}
	cs.Clear()
	return handler.Success().WithRedraw()
}

// RegisterHandlers installs the caret handlers into reg.
func RegisterHandlers(reg *dispatcher.Registry) error {
	handlers := map[string]handler.EditorActionHandler{
		dispatcher.ActionCloneCaretBelow:       NewCloneBelowHandler(),
		dispatcher.ActionCloneCaretAbove:       NewCloneAboveHandler(),
		dispatcher.ActionRemoveSecondaryCarets: RemoveSecondaryHandler{},
	}
	for id, h := range handlers {
		if _, err := reg.Register(id, h); err != nil {
			return err
		}
	}
	return nil
}
