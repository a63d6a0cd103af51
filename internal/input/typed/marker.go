package typed

import (
	"fmt"
	"strings"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
)

// MarkerHandlerID identifies the marker handler in a pipeline.
const MarkerHandlerID = "editor-basics.marker"

// DefaultMarker is the text the marker handler inserts.
const DefaultMarker = "editor_basics\n"

// Mode selects what the marker handler does with the typed character.
type Mode string

const (
	// ModeReplace inserts the marker and drops the typed character.
	ModeReplace Mode = "replace"
	// ModeWrap inserts the marker, then passes the character on.
	ModeWrap Mode = "wrap"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeReplace, ModeWrap:
		return m, nil
	case "":
		return ModeWrap, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarkerHandler inserts a marker at the start of the document on every
// keystroke. Carets are shifted so they stay on the text they were on.
type MarkerHandler struct {
	marker string
	mode   Mode
	prev   Handler
}

// NewMarkerHandler creates a marker handler. An empty marker uses DefaultMarker.
func NewMarkerHandler(marker string, mode Mode) *MarkerHandler {
	if marker == "" {
		marker = DefaultMarker
	}
	if mode == "" {
		mode = ModeWrap
	}
	return &MarkerHandler{marker: marker, mode: mode}
}

// ID implements Installable.
func (h *MarkerHandler) ID() string { return MarkerHandlerID }

// SetPrevious implements Chainer.
func (h *MarkerHandler) SetPrevious(prev Handler) { h.prev = prev }

// Execute implements Handler.
func (h *MarkerHandler) Execute(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error {
	end, err := ed.Insert(0, h.marker)
	if err != nil {
		return err
	}
	ShiftCarets(ed, 0, end)

	if h.mode == ModeWrap && h.prev != nil {
		return h.prev.Execute(ed, ch, ctx)
	}
	return nil
}
