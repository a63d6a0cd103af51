// Package typed implements the typed-action pipeline: the single stage
// every typed character passes through before it reaches the buffer.
//
// A Pipeline starts with DefaultHandler, which inserts the character at
// every caret. Custom handlers are installed explicitly during startup with
// RegisterTypedHandler. Installing replaces the pipeline's handler; a
// handler that implements Chainer is handed the previous one so it can
// delegate to it. Registration is idempotent per handler ID and has no
// teardown.
//
//	p := typed.NewPipeline(typed.WithLogger(logger))
//	typed.RegisterTypedHandler(p, typed.NewMarkerHandler("editor_basics\n", typed.ModeWrap))
//	err := p.Type(ed, 'x', ctx)
package typed
