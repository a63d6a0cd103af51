// Package buffer provides the text buffer behind an editor.
//
// The buffer stores its text as a single string and keeps an index of line
// start offsets so that conversions between byte offsets and line/column
// points are cheap:
//
//	buf := buffer.NewBufferFromString("alpha\nbeta")
//	buf.OffsetToPoint(7)                      // (1:1)
//	buf.PointToOffset(buffer.Point{Line: 1})  // 6
//
// All methods are safe for concurrent use.
package buffer
