package cursor

import (
	"fmt"

	"github.com/dshills/edbasics/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection represents a caret with an optional selected range.
// Anchor is where the selection started; Head is where typing occurs.
// Selection is an immutable value type.
type Selection struct {
	Anchor ByteOffset
	Head   ByteOffset
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head ByteOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a caret.
func NewCursorSelection(offset ByteOffset) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() ByteOffset {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() ByteOffset {
	return max(s.Anchor, s.Head)
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// MoveTo returns a collapsed selection at the given offset.
func (s Selection) MoveTo(offset ByteOffset) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// MoveBy returns the selection shifted by delta bytes.
func (s Selection) MoveBy(delta ByteOffset) Selection {
	return Selection{Anchor: s.Anchor + delta, Head: s.Head + delta}
}

// Touches returns true if the selections overlap or share an endpoint.
func (s Selection) Touches(other Selection) bool {
	return s.Start() <= other.End() && other.Start() <= s.End()
}

// Merge returns a forward selection covering both selections.
func (s Selection) Merge(other Selection) Selection {
	return Selection{
		Anchor: min(s.Start(), other.Start()),
		Head:   max(s.End(), other.End()),
	}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s == other
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Anchor, s.Head)
}
