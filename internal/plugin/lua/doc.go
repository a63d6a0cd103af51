// Package lua runs user scripts that customize typed input.
//
// Scripts execute in a sandboxed gopher-lua state: only the base, table,
// string and math libraries are opened, file and module loading functions
// are removed, and every call runs under a timeout.
//
// A ScriptHandler wraps a script as a typed-input handler. The script
// defines a global on_typed function:
//
//	function on_typed(ch, line, col)
//	  if ch == "(" then return "()" end
//	  return nil
//	end
//
// A string result is inserted at every caret instead of the typed
// character; nil passes the character on to the previous handler.
package lua
