package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// safeModules are the modules require may load.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// openSafeLibraries opens only side-effect free standard libraries.
// io, os, debug and package are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	L.SetTop(0)
}

// installSandbox removes globals that load code from disk or strings and
// replaces require with a whitelist.
func installSandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safeModules[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(L.GetGlobal(name))
		return 1
	}))
}
