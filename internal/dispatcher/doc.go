// Package dispatcher holds the editor action handler registry.
//
// The registry maps well-known action identifiers, such as
// ActionCloneCaretBelow, to the handler that implements them. The host
// creates one registry at startup, fills it with its built-in handlers,
// and hands it to every command that delegates to an action:
//
//	reg := dispatcher.NewRegistry()
//	caret.RegisterHandlers(reg)
//
//	h := reg.MustLookup(dispatcher.ActionCloneCaretBelow)
//	result := h.Execute(ed, primary, ctx)
//
// Registering a handler under an identifier that already has one replaces
// it and returns the previous handler so the new one can wrap it.
package dispatcher
