package typed

import (
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/engine/buffer"
	"github.com/dshills/edbasics/internal/engine/cursor"
)

// DefaultHandler inserts the typed character at every caret.
type DefaultHandler struct{}

// Execute implements Handler.
func (DefaultHandler) Execute(ed *editor.Editor, ch rune, _ *execctx.ExecutionContext) error {
	return InsertAtCarets(ed, string(ch))
}

// InsertAtCarets inserts text at the head of every caret and moves each
// caret past its insertion. Carets are processed from the highest offset
// down so earlier offsets stay valid.
func InsertAtCarets(ed *editor.Editor, text string) error {
	if text == "" {
		return nil
	}
	cs := ed.Cursors()
	sels := cs.All()
	if len(sels) == 0 {
		return nil
	}

	// The buffer normalizes line endings, so the inserted length is taken
	// from the offsets it reports rather than from text.
	var n buffer.ByteOffset
	for i := len(sels) - 1; i >= 0; i-- {
		end, err := ed.Insert(sels[i].Head, text)
		if err != nil {
			return err
		}
		n = end - sels[i].Head
	}

	moved := make([]cursor.Selection, len(sels))
	for i, sel := range sels {
		moved[i] = sel.MoveTo(sel.Head + n*buffer.ByteOffset(i+1))
	}
	cs.SetAll(moved, cs.PrimaryIndex())
	return nil
}

// ShiftCarets moves every caret at or after offset by delta bytes.
func ShiftCarets(ed *editor.Editor, offset, delta buffer.ByteOffset) {
	ed.Cursors().MapInPlace(func(sel cursor.Selection) cursor.Selection {
		if sel.Start() < offset {
			return sel
		}
		return sel.MoveBy(delta)
	})
}
