// Package cursor provides the caret model of an editor.
//
// A Selection is an anchor/head pair; when Anchor == Head it is a plain
// caret with no selected text. A CursorSet holds every caret of an editor,
// kept sorted by position with overlapping carets merged, and designates
// one of them as primary:
//
//	cs := cursor.NewCursorSet(cursor.NewCursorSelection(10))
//	cs.Add(cursor.NewCursorSelection(42)) // 42 becomes primary
//	p, _ := cs.Primary()
//
// Unlike most editors, a CursorSet may be empty; callers that need a caret
// check Count or the ok result of Primary.
package cursor
