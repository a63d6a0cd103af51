package action

import "github.com/dshills/edbasics/internal/dispatcher/execctx"

// Presentation is the menu state computed by Update.
type Presentation struct {
	Enabled bool
	Visible bool
}

// Action is a user-invocable command.
type Action interface {
	// Update computes whether the command is shown and enabled.
	Update(ctx *execctx.ExecutionContext) Presentation

	// Execute runs the command.
	Execute(ctx *execctx.ExecutionContext) error
}
