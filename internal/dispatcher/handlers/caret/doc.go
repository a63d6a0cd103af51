// Package caret provides the host's built-in multi-caret action handlers.
//
//   - editor.cloneCaretBelow: add a caret one line below the given caret
//   - editor.cloneCaretAbove: add a caret one line above the given caret
//   - editor.removeSecondaryCarets: keep only the primary caret
//
// A cloned caret keeps the column of the caret it was cloned from, clamped
// to the length of the target line, and becomes the primary caret so that
// repeated invocations keep extending the column. Cloning past the first
// or last line is a no-op.
//
// Register the handlers with the host registry at startup:
//
//	if err := caret.RegisterHandlers(reg); err != nil {
//	    return err
//	}
package caret
