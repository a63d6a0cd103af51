package action_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/edbasics/internal/action"
	"github.com/dshills/edbasics/internal/dispatcher"
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/dispatcher/handler"
	"github.com/dshills/edbasics/internal/dispatcher/handlers/caret"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/buffer"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

type call struct {
	ed    *editor.Editor
	caret cursor.Selection
	ctx   *execctx.ExecutionContext
}

// recordingHandler records every delegated call.
type recordingHandler struct {
	calls  []call
	result handler.Result
}

func (h *recordingHandler) Execute(ed *editor.Editor, c cursor.Selection, ctx *execctx.ExecutionContext) handler.Result {
	h.calls = append(h.calls, call{ed: ed, caret: c, ctx: ctx})
	return h.result
}

func tenLines() string {
	return strings.Repeat("line\n", 10)
}

func newRegistry(t *testing.T, h handler.EditorActionHandler) *dispatcher.Registry {
	t.Helper()
	reg := dispatcher.NewRegistry()
	_, err := reg.Register(dispatcher.ActionCloneCaretBelow, h)
	require.NoError(t, err)
	return reg
}

func TestCaretCloneEnabledRequiresProjectAndEditor(t *testing.T) {
	cmd := action.NewCaretCloneBelow(dispatcher.NewRegistry())
	project := editor.NewProject(t.TempDir())
	ed := editor.New("text")

	tests := []struct {
		name string
		ctx  *execctx.ExecutionContext
	}{
		{"empty", execctx.New()},
		{"project only", execctx.New().WithProject(project)},
		{"editor only", execctx.New().WithEditor(ed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, cmd.Enabled(tt.ctx))
			assert.Equal(t, action.Presentation{}, cmd.Update(tt.ctx))
		})
	}
}

func TestCaretCloneDisabledWithoutCarets(t *testing.T) {
	cmd := action.NewCaretCloneBelow(dispatcher.NewRegistry())
	ed := editor.New("text", editor.WithCursors(cursor.NewCursorSet()))
	ctx := execctx.New().WithProject(editor.NewProject(".")).WithEditor(ed)

	assert.False(t, cmd.Enabled(ctx))
}

func TestCaretCloneEnabledWithCarets(t *testing.T) {
	cmd := action.NewCaretCloneBelow(dispatcher.NewRegistry())
	project := editor.NewProject(".")

	for _, n := range []int{1, 2, 5} {
		sels := make([]cursor.Selection, n)
		for i := range sels {
			sels[i] = cursor.NewCursorSelection(buffer.ByteOffset(i * 5))
		}
		ed := editor.New(tenLines(), editor.WithCursors(cursor.NewCursorSet(sels...)))
		ctx := execctx.New().WithProject(project).WithEditor(ed)

		assert.True(t, cmd.Enabled(ctx), "carets=%d", n)
		assert.Equal(t, action.Presentation{Enabled: true, Visible: true}, cmd.Update(ctx))
	}
}

func TestCaretCloneExecuteDelegatesOnce(t *testing.T) {
	rec := &recordingHandler{result: handler.Success()}
	cmd := action.NewCaretCloneBelow(newRegistry(t, rec))

	ed := editor.New(tenLines())
	line5 := ed.Buffer().PointToOffset(buffer.Point{Line: 5, Column: 2})
	ed.Cursors().Set(cursor.NewCursorSelection(line5))
	ctx := execctx.New().WithProject(editor.NewProject(".")).WithEditor(ed)

	require.NoError(t, cmd.Execute(ctx))

	require.Len(t, rec.calls, 1)
	assert.Same(t, ed, rec.calls[0].ed)
	assert.Equal(t, cursor.NewCursorSelection(line5), rec.calls[0].caret)
	assert.Same(t, ctx, rec.calls[0].ctx)
}

func TestCaretCloneExecuteUsesPrimaryCaret(t *testing.T) {
	rec := &recordingHandler{result: handler.Success()}
	cmd := action.NewCaretCloneBelow(newRegistry(t, rec))

	ed := editor.New(tenLines(), editor.WithCursors(cursor.NewCursorSet(
		cursor.NewCursorSelection(10),
		cursor.NewCursorSelection(0),
	)))
	ctx := execctx.New().WithProject(editor.NewProject(".")).WithEditor(ed)

	require.NoError(t, cmd.Execute(ctx))
	assert.Equal(t, cursor.NewCursorSelection(10), rec.calls[0].caret)
}

func TestCaretCloneExecuteDoesNotMutateContext(t *testing.T) {
	reg := dispatcher.NewRegistry()
	require.NoError(t, caret.RegisterHandlers(reg))
	cmd := action.NewCaretCloneBelow(reg)

	project := editor.NewProject(".")
	ed := editor.New(tenLines())
	ctx := execctx.New().WithProject(project).WithEditor(ed).WithData(execctx.DataKeyPlace, "menu")

	require.NoError(t, cmd.Execute(ctx))

	gotProject, _ := ctx.Project()
	gotEditor, _ := ctx.Editor()
	assert.Same(t, project, gotProject)
	assert.Same(t, ed, gotEditor)
	assert.Equal(t, 1, ctx.DataLen())
	assert.Equal(t, "menu", ctx.GetDataString(execctx.DataKeyPlace))

	assert.Equal(t, 2, ed.Cursors().Count())
}

func TestCaretCloneExecuteReturnsHandlerError(t *testing.T) {
	boom := errors.New("boom")
	cmd := action.NewCaretCloneBelow(newRegistry(t, &recordingHandler{result: handler.Error(boom)}))
	ctx := execctx.New().WithEditor(editor.New("x"))

	assert.ErrorIs(t, cmd.Execute(ctx), boom)
}

func TestCaretCloneExecuteWithoutEditorPanics(t *testing.T) {
	cmd := action.NewCaretCloneBelow(newRegistry(t, &recordingHandler{}))

	assert.PanicsWithError(t, "required data missing: "+execctx.ErrMissingEditor.Error(), func() {
		_ = cmd.Execute(execctx.New().WithProject(editor.NewProject(".")))
	})
}

func TestCaretCloneExecuteWithoutHandlerPanics(t *testing.T) {
	cmd := action.NewCaretCloneBelow(dispatcher.NewRegistry())
	ctx := execctx.New().WithProject(editor.NewProject(".")).WithEditor(editor.New("x"))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, dispatcher.ErrHandlerNotFound)
	}()
	_ = cmd.Execute(ctx)
	t.Fatal("expected panic")
}

func TestCaretCloneAbove(t *testing.T) {
	reg := dispatcher.NewRegistry()
	require.NoError(t, caret.RegisterHandlers(reg))
	ed := editor.New("ab\ncd", editor.WithCursors(cursor.NewCursorSetAt(4)))
	ctx := execctx.New().WithProject(editor.NewProject(".")).WithEditor(ed)

	require.NoError(t, action.NewCaretCloneAbove(reg).Execute(ctx))

	assert.Equal(t, []cursor.Selection{cursor.NewCursorSelection(1), cursor.NewCursorSelection(4)}, ed.Cursors().All())
}

func TestRemoveSecondaryCarets(t *testing.T) {
	reg := dispatcher.NewRegistry()
	require.NoError(t, caret.RegisterHandlers(reg))
	cmd := action.NewRemoveSecondaryCarets(reg)

	assert.Equal(t, action.Presentation{}, cmd.Update(execctx.New()))

	ed := editor.New("a\nb")
	ctx := execctx.New().WithEditor(ed)
	assert.Equal(t, action.Presentation{Enabled: false, Visible: true}, cmd.Update(ctx))

	ed.Cursors().Add(cursor.NewCursorSelection(2))
	assert.True(t, cmd.Update(ctx).Enabled)
	require.NoError(t, cmd.Execute(ctx))
	assert.Equal(t, 1, ed.Cursors().Count())
}
