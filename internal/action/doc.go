// Package action implements user-invocable commands and the manager the
// host uses to present and invoke them.
//
// An Action has two entry points: Update, which the host calls whenever it
// renders a menu or key hint, and Execute, which it calls when the user
// activates the command. Update must be cheap and side-effect free.
// Execute may assume Update reported the action enabled.
//
// CaretCloneCommand is the central example: it is enabled only when a
// project and an editor with at least one caret are present, and on
// execution it delegates to the host's "clone caret" action handler with
// the editor's primary caret.
package action
