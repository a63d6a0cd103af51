// Package config loads edbasics configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, by default $XDG_CONFIG_HOME/edbasics/config.toml
//  3. EDBASICS_* environment variables
//
// An empty EDBASICS_LOG_LEVEL, EDBASICS_TYPED_MODE or boolean variable is
// ignored; an empty string variable such as EDBASICS_LOG_FILE clears the
// setting.
//
// Example file:
//
//	[logging]
//	level = "debug"
//
//	[typed]
//	enabled = true
//	mode = "replace"
//	marker = "editor_basics\n"
//
// A Watcher reloads the file when it changes on disk.
package config
