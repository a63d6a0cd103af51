package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"replace", ModeReplace, false},
		{" WRAP ", ModeWrap, false},
		{"", ModeWrap, false},
		{"append", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidMode, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMarkerHandlerReplace(t *testing.T) {
	ed := editor.New("code", editor.WithCursors(cursor.NewCursorSetAt(4)))
	p := NewPipeline()
	RegisterTypedHandler(p, NewMarkerHandler("", ModeReplace))

	require.NoError(t, p.Type(ed, 'x', execctx.New()))

	assert.Equal(t, "editor_basics\ncode", ed.Buffer().Text())
	primary, _ := ed.Cursors().Primary()
	assert.Equal(t, cursor.NewCursorSelection(18), primary)
}

func TestMarkerHandlerWrap(t *testing.T) {
	ed := editor.New("code", editor.WithCursors(cursor.NewCursorSetAt(4)))
	p := NewPipeline()
	RegisterTypedHandler(p, NewMarkerHandler("# ", ModeWrap))

	require.NoError(t, p.Type(ed, '!', execctx.New()))
	require.NoError(t, p.Type(ed, '?', execctx.New()))

	assert.Equal(t, "# # code!?", ed.Buffer().Text())
	primary, _ := ed.Cursors().Primary()
	assert.Equal(t, cursor.NewCursorSelection(10), primary)
}

func TestMarkerHandlerKeepsCaretAtStart(t *testing.T) {
	ed := editor.New("abc")
	h := NewMarkerHandler(">", ModeReplace)

	require.NoError(t, h.Execute(ed, 'x', execctx.New()))

	assert.Equal(t, ">abc", ed.Buffer().Text())
	primary, _ := ed.Cursors().Primary()
	assert.Equal(t, cursor.NewCursorSelection(1), primary)
}

func TestMarkerHandlerReadOnly(t *testing.T) {
	ed := editor.New("abc", editor.WithReadOnly(true))

	err := NewMarkerHandler("", ModeWrap).Execute(ed, 'x', execctx.New())
	assert.ErrorIs(t, err, editor.ErrReadOnly)
}

func TestMarkerHandlerNormalizedLineEndings(t *testing.T) {
	ed := editor.New("code", editor.WithCursors(cursor.NewCursorSetAt(4)))
	p := NewPipeline()
	RegisterTypedHandler(p, NewMarkerHandler("m\r\n", ModeWrap))

	require.NoError(t, p.Type(ed, 'x', execctx.New()))

	assert.Equal(t, "m\ncodex", ed.Buffer().Text())
	primary, _ := ed.Cursors().Primary()
	assert.Equal(t, cursor.NewCursorSelection(7), primary)
}
