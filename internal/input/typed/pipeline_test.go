package typed

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

type countingHandler struct {
	id    string
	calls int
	prev  Handler
}

func (h *countingHandler) ID() string               { return h.id }
func (h *countingHandler) SetPrevious(prev Handler) { h.prev = prev }
func (h *countingHandler) Execute(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error {
	h.calls++
	return nil
}

func TestDefaultHandlerInsertsAtEveryCaret(t *testing.T) {
	ed := editor.New("ab\ncd", editor.WithCursors(cursor.NewCursorSet(
		cursor.NewCursorSelection(4),
		cursor.NewCursorSelection(1),
	)))
	p := NewPipeline()

	require.NoError(t, p.Type(ed, 'x', execctx.New()))

	assert.Equal(t, "axb\ncxd", ed.Buffer().Text())
	assert.Equal(t, []cursor.Selection{
		cursor.NewCursorSelection(2),
		cursor.NewCursorSelection(6),
	}, ed.Cursors().All())

	primary, _ := ed.Cursors().Primary()
	assert.Equal(t, cursor.NewCursorSelection(6), primary)
}

func TestDefaultHandlerMultiByteRune(t *testing.T) {
	ed := editor.New("")
	p := NewPipeline()

	require.NoError(t, p.Type(ed, 'é', execctx.New()))
	require.NoError(t, p.Type(ed, '!', execctx.New()))

	assert.Equal(t, "é!", ed.Buffer().Text())
	primary, _ := ed.Cursors().Primary()
	assert.Equal(t, cursor.NewCursorSelection(3), primary)
}

func TestInsertAtCaretsNormalizedLineEndings(t *testing.T) {
	ed := editor.New("ab\ncd", editor.WithCursors(cursor.NewCursorSet(
		cursor.NewCursorSelection(1),
		cursor.NewCursorSelection(4),
	)))

	require.NoError(t, InsertAtCarets(ed, "\r\n"))

	assert.Equal(t, "a\nb\nc\nd", ed.Buffer().Text())
	assert.Equal(t, []cursor.Selection{
		cursor.NewCursorSelection(2),
		cursor.NewCursorSelection(6),
	}, ed.Cursors().All())
}

func TestDefaultHandlerNoCarets(t *testing.T) {
	ed := editor.New("abc", editor.WithCursors(cursor.NewCursorSet()))

	require.NoError(t, NewPipeline().Type(ed, 'x', execctx.New()))
	assert.Equal(t, "abc", ed.Buffer().Text())
}

func TestTypeRejectsReadOnlyAndMissingEditor(t *testing.T) {
	p := NewPipeline()

	assert.ErrorIs(t, p.Type(nil, 'x', execctx.New()), execctx.ErrMissingEditor)
	assert.ErrorIs(t, p.Type(editor.New("", editor.WithReadOnly(true)), 'x', execctx.New()), editor.ErrReadOnly)
}

func TestTypeWithNilHandler(t *testing.T) {
	p := NewPipeline()
	p.SetupHandler(nil)

	assert.ErrorIs(t, p.Type(editor.New(""), 'x', execctx.New()), ErrNoHandler)
}

func TestSetupHandlerReturnsPrevious(t *testing.T) {
	p := NewPipeline()
	h := &countingHandler{id: "a"}

	prev := p.SetupHandler(h)

	assert.IsType(t, DefaultHandler{}, prev)
	assert.IsType(t, DefaultHandler{}, h.prev)
	assert.Same(t, h, p.Handler())
}

func TestRegisterTypedHandlerIsIdempotent(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := NewPipeline(WithLogger(zap.New(core)))
	h := &countingHandler{id: "custom"}

	assert.True(t, RegisterTypedHandler(p, h))
	assert.False(t, RegisterTypedHandler(p, h))
	assert.False(t, RegisterTypedHandler(p, &countingHandler{id: "custom"}))

	assert.Equal(t, []string{"custom"}, p.Installed())
	assert.IsType(t, DefaultHandler{}, h.prev, "second registration must not chain the handler onto itself")

	require.NoError(t, p.Type(editor.New(""), 'a', execctx.New()))
	assert.Equal(t, 1, h.calls)
	assert.Equal(t, 1, logs.FilterMessage("typed handler installed").Len())
}

func TestRegisterTypedHandlerChainsDistinctHandlers(t *testing.T) {
	p := NewPipeline()
	first := &countingHandler{id: "first"}
	second := &countingHandler{id: "second"}

	RegisterTypedHandler(p, first)
	RegisterTypedHandler(p, second)

	assert.Same(t, first, second.prev)
	assert.Equal(t, []string{"first", "second"}, p.Installed())
}

func TestHandlerFunc(t *testing.T) {
	boom := errors.New("boom")
	p := NewPipeline()
	p.SetupHandler(HandlerFunc(func(*editor.Editor, rune, *execctx.ExecutionContext) error {
		return boom
	}))

	assert.ErrorIs(t, p.Type(editor.New(""), 'x', execctx.New()), boom)
}

func TestRegisterTypedHandlerConcurrent(t *testing.T) {
	p := NewPipeline()
	const n = 16

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			RegisterTypedHandler(p, &countingHandler{id: fmt.Sprintf("h%02d", i)})
		}(i)
	}
	wg.Wait()

	require.Len(t, p.Installed(), n)

	seen := make(map[string]bool)
	h := p.Handler()
	for {
		c, ok := h.(*countingHandler)
		if !ok {
			break
		}
		require.False(t, seen[c.id], "handler %s chained twice", c.id)
		seen[c.id] = true
		h = c.prev
	}
	assert.IsType(t, DefaultHandler{}, h)
	assert.Len(t, seen, n)
}
