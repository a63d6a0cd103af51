package action

import (
	"github.com/dshills/edbasics/internal/dispatcher"
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
)

// CaretCloneCommand clones the primary caret by delegating to a
// registered clone-caret action handler. It holds no mutable state.
type CaretCloneCommand struct {
	registry *dispatcher.Registry
	actionID string
}

// NewCaretCloneBelow creates the command that clones a caret one line below.
func NewCaretCloneBelow(reg *dispatcher.Registry) *CaretCloneCommand {
	return &CaretCloneCommand{registry: reg, actionID: dispatcher.ActionCloneCaretBelow}
}

// NewCaretCloneAbove creates the command that clones a caret one line above.
func NewCaretCloneAbove(reg *dispatcher.Registry) *CaretCloneCommand {
	return &CaretCloneCommand{registry: reg, actionID: dispatcher.ActionCloneCaretAbove}
}

// Enabled reports whether a project is open and the active editor has at
// least one caret.
func (c *CaretCloneCommand) Enabled(ctx *execctx.ExecutionContext) bool {
	if _, ok := ctx.Project(); !ok {
		return false
	}
	ed, ok := ctx.Editor()
	if !ok {
		return false
	}
	return ed.Cursors().Count() > 0
}

// Update implements Action.
func (c *CaretCloneCommand) Update(ctx *execctx.ExecutionContext) Presentation {
	enabled := c.Enabled(ctx)
	return Presentation{Enabled: enabled, Visible: enabled}
}

// Execute implements Action. It panics if ctx has no editor or no handler
// is registered for the clone action; both are caller defects that Enabled
// and host startup rule out.
func (c *CaretCloneCommand) Execute(ctx *execctx.ExecutionContext) error {
	ed := ctx.RequiredEditor()
	h := c.registry.MustLookup(c.actionID)
	primary, _ := ed.Cursors().Primary()
	return h.Execute(ed, primary, ctx).Err()
}

// RemoveSecondaryCarets collapses the caret model to the primary caret.
type RemoveSecondaryCarets struct {
	registry *dispatcher.Registry
}

// NewRemoveSecondaryCarets creates the command.
func NewRemoveSecondaryCarets(reg *dispatcher.Registry) *RemoveSecondaryCarets {
	return &RemoveSecondaryCarets{registry: reg}
}

// Update implements Action. The command is shown whenever an editor is
// active and enabled only while it has several carets.
func (c *RemoveSecondaryCarets) Update(ctx *execctx.ExecutionContext) Presentation {
	ed, ok := ctx.Editor()
	if !ok {
		return Presentation{}
	}
	return Presentation{Enabled: ed.Cursors().IsMulti(), Visible: true}
}

// Execute implements Action.
func (c *RemoveSecondaryCarets) Execute(ctx *execctx.ExecutionContext) error {
	ed := ctx.RequiredEditor()
	h := c.registry.MustLookup(dispatcher.ActionRemoveSecondaryCarets)
	primary, _ := ed.Cursors().Primary()
	return h.Execute(ed, primary, ctx).Err()
}

// Builtins returns the built-in action implementations by manifest name.
func Builtins(reg *dispatcher.Registry) map[string]Action {
	return map[string]Action{
		"cloneCaretBelow":       NewCaretCloneBelow(reg),
		"cloneCaretAbove":       NewCaretCloneAbove(reg),
		"removeSecondaryCarets": NewRemoveSecondaryCarets(reg),
	}
}
