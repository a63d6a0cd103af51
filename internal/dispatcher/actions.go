package dispatcher

// Well-known editor action identifiers.
const (
	ActionCloneCaretBelow       = "editor.cloneCaretBelow"
	ActionCloneCaretAbove       = "editor.cloneCaretAbove"
	ActionRemoveSecondaryCarets = "editor.removeSecondaryCarets"
)
