package buffer

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Buffer is a thread-safe text buffer with a line index.
// Line endings are normalized to "\n" on load.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []ByteOffset // offset of the first byte of each line
	revision   uint64
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return NewBufferFromString("")
}

// NewBufferFromString creates a buffer with the given initial content.
func NewBufferFromString(s string) *Buffer {
	b := &Buffer{}
	b.setText(normalizeLineEndings(s))
	return b
}

// NewBufferFromReader creates a buffer from the contents of r.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading buffer content: %w", err)
	}
	return NewBufferFromString(string(data)), nil
}

func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// setText replaces the text and rebuilds the line index. Caller holds mu.
func (b *Buffer) setText(s string) {
	b.text = s
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			b.lineStarts = append(b.lineStarts, ByteOffset(i+1))
		}
	}
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextRange returns the text in [start, end), clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lineStarts))
}

// LineText returns the text of a line without its trailing newline.
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return ""
	}
	return b.text[b.lineStarts[line]:b.lineEnd(line)]
}

// LineLen returns the length of a line in bytes, excluding the newline.
func (b *Buffer) LineLen(line uint32) uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return 0
	}
	return uint32(b.lineEnd(line) - b.lineStarts[line])
}

// LineStartOffset returns the offset of the first byte of a line.
// Lines past the end map to the buffer length.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	return b.lineStarts[line]
}

// LineEndOffset returns the offset just before the line's newline.
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	return b.lineEnd(line)
}

// lineEnd returns the end offset of line, excluding the newline. Caller holds mu.
func (b *Buffer) lineEnd(line uint32) ByteOffset {
	if int(line)+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - 1
	}
	return ByteOffset(len(b.text))
}

// OffsetToPoint converts a byte offset to a line/column point.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset = b.clamp(offset)
	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
	return Point{Line: uint32(line), Column: uint32(offset - b.lineStarts[line])}
}

// PointToOffset converts a line/column point to a byte offset.
// Columns past the end of the line are clamped to the line end.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(p.Line) >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	start := b.lineStarts[p.Line]
	end := b.lineEnd(p.Line)
	offset := start + ByteOffset(p.Column)
	if offset > end {
		offset = end
	}
	return offset
}

// Insert inserts text at offset and returns the offset just past it.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return 0, fmt.Errorf("insert at %d: %w", offset, ErrOffsetOutOfRange)
	}
	text = normalizeLineEndings(text)
	b.setText(b.text[:offset] + text + b.text[offset:])
	b.revision++
	return offset + ByteOffset(len(text)), nil
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start > end {
		return fmt.Errorf("delete %v: %w", Range{Start: start, End: end}, ErrInvalidRange)
	}
	if start < 0 || end > ByteOffset(len(b.text)) {
		return fmt.Errorf("delete %v: %w", Range{Start: start, End: end}, ErrOffsetOutOfRange)
	}
	b.setText(b.text[:start] + b.text[end:])
	b.revision++
	return nil
}

// Revision returns a counter incremented on every edit.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// clamp limits offset to [0, len]. Caller holds mu.
func (b *Buffer) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > ByteOffset(len(b.text)) {
		return ByteOffset(len(b.text))
	}
	return offset
}
