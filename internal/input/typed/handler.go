package typed

import (
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
)

// Handler processes one typed character.
type Handler interface {
	Execute(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error

// Execute implements Handler.
func (f HandlerFunc) Execute(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error {
	return f(ed, ch, ctx)
}

// Installable is a handler with a stable identity, used to make
// registration idempotent.
type Installable interface {
	Handler
	ID() string
}

// Chainer is implemented by handlers that wrap the handler they replace.
type Chainer interface {
	SetPrevious(prev Handler)
}
