package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/input/typed"
)

// TypedFunction is the global a script defines to intercept typing.
const TypedFunction = "on_typed"

// ScriptHandlerID identifies the scripted handler in a typed pipeline.
const ScriptHandlerID = "lua.script"

// ScriptHandler is a typed-input handler implemented by a Lua script.
type ScriptHandler struct {
	state  *State
	source string
	prev   typed.Handler
	logger *zap.Logger
}

// NewScriptHandler loads the script at path.
func NewScriptHandler(path string, logger *zap.Logger, opts ...StateOption) (*ScriptHandler, error) {
	state := NewState(opts...)
	if err := state.DoFile(path); err != nil {
		_ = state.Close()
		return nil, fmt.Errorf("loading typed script %s: %w", path, err)
	}
	return newScriptHandler(state, path, logger)
}

// NewScriptHandlerFromString loads a script from source text.
func NewScriptHandlerFromString(code string, logger *zap.Logger, opts ...StateOption) (*ScriptHandler, error) {
	state := NewState(opts...)
	if err := state.DoString(code); err != nil {
		_ = state.Close()
		return nil, fmt.Errorf("loading typed script: %w", err)
	}
	return newScriptHandler(state, "<string>", logger)
}

func newScriptHandler(state *State, source string, logger *zap.Logger) (*ScriptHandler, error) {
	if !state.HasFunction(TypedFunction) {
		_ = state.Close()
		return nil, fmt.Errorf("%s: %w: %s", source, ErrFunctionNotFound, TypedFunction)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScriptHandler{
		state:  state,
		source: source,
		logger: logger.With(zap.String("script", source)),
	}, nil
}

// ID implements typed.Installable.
func (h *ScriptHandler) ID() string { return ScriptHandlerID }

// SetPrevious implements typed.Chainer.
func (h *ScriptHandler) SetPrevious(prev typed.Handler) { h.prev = prev }

// Execute implements typed.Handler.
func (h *ScriptHandler) Execute(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error {
	var line, col lua.LNumber
	if primary, ok := ed.Cursors().Primary(); ok {
		p := ed.CaretPoint(primary)
		line, col = lua.LNumber(p.Line+1), lua.LNumber(p.Column+1)
	}

	results, err := h.state.Call(TypedFunction, lua.LString(string(ch)), line, col)
	if err != nil {
		h.logger.Warn("typed script failed", zap.Error(err))
		return fmt.Errorf("%s: %w", TypedFunction, err)
	}

	if len(results) > 0 {
		if s, ok := results[0].(lua.LString); ok {
			return typed.InsertAtCarets(ed, string(s))
		}
	}
	if h.prev == nil {
		return nil
	}
	return h.prev.Execute(ed, ch, ctx)
}

// Close releases the script's Lua state.
func (h *ScriptHandler) Close() error {
	return h.state.Close()
}
