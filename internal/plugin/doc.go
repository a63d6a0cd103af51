// Package plugin reads the plugin manifest that declares user-invocable
// commands.
//
// A manifest is a YAML document naming the plugin and listing its actions.
// Each action has an identifier, a display label, an optional key binding,
// and the name of the built-in implementation that backs it:
//
//	name: editor-basics
//	version: 1.0.0
//	actions:
//	  - id: editorBasics.cloneCaretBelow
//	    label: Clone Caret Below
//	    implementation: cloneCaretBelow
//	    key: ctrl+d
//
// DefaultManifest returns the manifest compiled into the binary.
package plugin
