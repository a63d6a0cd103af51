// Package execctx provides the execution context passed to commands and
// action handlers.
package execctx

import (
	"fmt"

	"github.com/dshills/edbasics/internal/editor"
)

// Well-known data keys.
const (
	// DataKeyPlace names the surface a command was invoked from ("menu", "key").
	DataKeyPlace = "place"
	// DataKeyTypedChar holds the rune being typed, for typed-input handlers.
	DataKeyTypedChar = "typedChar"
)

// ExecutionContext describes where an action runs: the active project and
// editor, if any, plus arbitrary lookup data supplied by the host.
type ExecutionContext struct {
	project *editor.Project
	editor  *editor.Editor
	data    map[string]any
}

// New creates an empty execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		data: make(map[string]any),
	}
}

// WithProject returns the context with the project set.
func (ctx *ExecutionContext) WithProject(p *editor.Project) *ExecutionContext {
	ctx.project = p
	return ctx
}

// WithEditor returns the context with the editor set.
func (ctx *ExecutionContext) WithEditor(ed *editor.Editor) *ExecutionContext {
	ctx.editor = ed
	return ctx
}

// WithData returns the context with a data value set.
func (ctx *ExecutionContext) WithData(key string, value any) *ExecutionContext {
	ctx.SetData(key, value)
	return ctx
}

// Project returns the active project, if any.
func (ctx *ExecutionContext) Project() (*editor.Project, bool) {
	return ctx.project, ctx.project != nil
}

// Editor returns the active editor, if any.
func (ctx *ExecutionContext) Editor() (*editor.Editor, bool) {
	return ctx.editor, ctx.editor != nil
}

// RequiredEditor returns the active editor and panics if there is none.
// Callers use it only after an enablement check has established presence.
func (ctx *ExecutionContext) RequiredEditor() *editor.Editor {
	if ctx.editor == nil {
		panic(fmt.Errorf("required data missing: %w", ErrMissingEditor))
	}
	return ctx.editor
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any)
	}
	ctx.data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (any, bool) {
	if ctx.data == nil {
		return nil, false
	}
	v, ok := ctx.data[key]
	return v, ok
}

// GetDataString retrieves a string value from context data.
func (ctx *ExecutionContext) GetDataString(key string) string {
	if v, ok := ctx.GetData(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// DataLen returns the number of data entries.
func (ctx *ExecutionContext) DataLen() int {
	return len(ctx.data)
}

// Validate checks that both a project and an editor are present.
func (ctx *ExecutionContext) Validate() error {
	if ctx.project == nil {
		return ErrMissingProject
	}
	if ctx.editor == nil {
		return ErrMissingEditor
	}
	return nil
}
