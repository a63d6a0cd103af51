package lua

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/cursor"
	"github.com/dshills/edbasics/internal/input/typed"
)

const pairScript = `
function on_typed(ch, line, col)
  if ch == "(" then
    return "()"
  end
  if ch == "@" then
    return string.format("%d:%d", line, col)
  end
  return nil
end
`

func newPipeline(t *testing.T) (*typed.Pipeline, *ScriptHandler) {
	t.Helper()
	h, err := NewScriptHandlerFromString(pairScript, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	p := typed.NewPipeline()
	require.True(t, typed.RegisterTypedHandler(p, h))
	return p, h
}

func TestScriptHandlerSubstitutes(t *testing.T) {
	p, _ := newPipeline(t)
	ed := editor.New("f")
	ed.Cursors().Set(cursor.NewCursorSelection(1))

	require.NoError(t, p.Type(ed, '(', execctx.New()))

	assert.Equal(t, "f()", ed.Buffer().Text())
}

func TestScriptHandlerReceivesPosition(t *testing.T) {
	p, _ := newPipeline(t)
	ed := editor.New("ab\ncd", editor.WithCursors(cursor.NewCursorSetAt(4)))

	require.NoError(t, p.Type(ed, '@', execctx.New()))

	assert.Equal(t, "ab\nc2:2d", ed.Buffer().Text())
}

func TestScriptHandlerFallsThrough(t *testing.T) {
	p, _ := newPipeline(t)
	ed := editor.New("")

	require.NoError(t, p.Type(ed, 'z', execctx.New()))

	assert.Equal(t, "z", ed.Buffer().Text())
}

func TestScriptHandlerRequiresFunction(t *testing.T) {
	_, err := NewScriptHandlerFromString(`x = 1`, nil)
	assert.ErrorIs(t, err, ErrFunctionNotFound)

	_, err = NewScriptHandlerFromString(`this is not lua`, nil)
	assert.Error(t, err)
}

func TestNewScriptHandlerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typed.lua")
	require.NoError(t, os.WriteFile(path, []byte(pairScript), 0o644))

	h, err := NewScriptHandler(path, nil)
	require.NoError(t, err)
	defer h.Close()
	assert.Equal(t, ScriptHandlerID, h.ID())

	_, err = NewScriptHandler(filepath.Join(t.TempDir(), "missing.lua"), nil)
	assert.Error(t, err)
}

func TestScriptHandlerRuntimeError(t *testing.T) {
	h, err := NewScriptHandlerFromString(`function on_typed(ch) error("nope") end`, nil)
	require.NoError(t, err)
	defer h.Close()

	err = h.Execute(editor.New(""), 'x', execctx.New())
	assert.Error(t, err)
}
