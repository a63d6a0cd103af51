// Package handler provides the editor action handler interface and the
// result type handlers return.
package handler

import (
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

// EditorActionHandler performs an editor action relative to one caret.
type EditorActionHandler interface {
	// Execute runs the action on ed, anchored at caret.
	Execute(ed *editor.Editor, caret cursor.Selection, ctx *execctx.ExecutionContext) Result
}

// Func is a function adapter for EditorActionHandler.
type Func func(ed *editor.Editor, caret cursor.Selection, ctx *execctx.ExecutionContext) Result

// Execute implements EditorActionHandler.
func (f Func) Execute(ed *editor.Editor, caret cursor.Selection, ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(ed, caret, ctx)
}
