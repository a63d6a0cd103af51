package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferFromString(t *testing.T) {
	buf := NewBufferFromString("alpha\r\nbeta\rgamma")

	assert.Equal(t, "alpha\nbeta\ngamma", buf.Text())
	assert.Equal(t, uint32(3), buf.LineCount())
	assert.Equal(t, "beta", buf.LineText(1))
}

func TestEmptyBufferHasOneLine(t *testing.T) {
	buf := NewBuffer()

	assert.Equal(t, uint32(1), buf.LineCount())
	assert.Equal(t, uint32(0), buf.LineLen(0))
	assert.Equal(t, Point{}, buf.OffsetToPoint(0))
}

func TestNewBufferFromReader(t *testing.T) {
	buf, err := NewBufferFromReader(strings.NewReader("one\ntwo\n"))
	require.NoError(t, err)

	assert.Equal(t, uint32(3), buf.LineCount())
	assert.Equal(t, "", buf.LineText(2))
}

func TestOffsetPointConversion(t *testing.T) {
	buf := NewBufferFromString("ab\ncdef\n\ng")

	tests := []struct {
		offset ByteOffset
		point  Point
	}{
		{0, Point{Line: 0, Column: 0}},
		{2, Point{Line: 0, Column: 2}},
		{3, Point{Line: 1, Column: 0}},
		{6, Point{Line: 1, Column: 3}},
		{8, Point{Line: 2, Column: 0}},
		{9, Point{Line: 3, Column: 0}},
		{10, Point{Line: 3, Column: 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.point, buf.OffsetToPoint(tt.offset), "OffsetToPoint(%d)", tt.offset)
		assert.Equal(t, tt.offset, buf.PointToOffset(tt.point), "PointToOffset(%v)", tt.point)
	}
}

func TestPointToOffsetClampsColumn(t *testing.T) {
	buf := NewBufferFromString("long line\nab\n")

	assert.Equal(t, ByteOffset(12), buf.PointToOffset(Point{Line: 1, Column: 7}))
	assert.Equal(t, buf.Len(), buf.PointToOffset(Point{Line: 9}))
}

func TestLineOffsets(t *testing.T) {
	buf := NewBufferFromString("abc\nde")

	assert.Equal(t, ByteOffset(0), buf.LineStartOffset(0))
	assert.Equal(t, ByteOffset(3), buf.LineEndOffset(0))
	assert.Equal(t, ByteOffset(4), buf.LineStartOffset(1))
	assert.Equal(t, ByteOffset(6), buf.LineEndOffset(1))
	assert.Equal(t, uint32(2), buf.LineLen(1))
}

func TestInsert(t *testing.T) {
	buf := NewBufferFromString("hello world")

	end, err := buf.Insert(5, ",\n")
	require.NoError(t, err)

	assert.Equal(t, ByteOffset(7), end)
	assert.Equal(t, "hello,\n world", buf.Text())
	assert.Equal(t, uint32(2), buf.LineCount())
	assert.Equal(t, uint64(1), buf.Revision())
}

func TestInsertOutOfRange(t *testing.T) {
	buf := NewBufferFromString("abc")

	_, err := buf.Insert(4, "x")
	assert.True(t, errors.Is(err, ErrOffsetOutOfRange))
	assert.Equal(t, uint64(0), buf.Revision())
}

func TestDelete(t *testing.T) {
	buf := NewBufferFromString("one\ntwo")

	require.NoError(t, buf.Delete(3, 4))
	assert.Equal(t, "onetwo", buf.Text())
	assert.Equal(t, uint32(1), buf.LineCount())

	assert.ErrorIs(t, buf.Delete(4, 2), ErrInvalidRange)
	assert.ErrorIs(t, buf.Delete(0, 99), ErrOffsetOutOfRange)
}

func TestTextRangeClamps(t *testing.T) {
	buf := NewBufferFromString("abcdef")

	assert.Equal(t, "cdef", buf.TextRange(2, 100))
	assert.Equal(t, "", buf.TextRange(4, 2))
}
