package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/edbasics/internal/input/typed"
)

// Config is the complete edbasics configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Editor  EditorConfig  `toml:"editor"`
	Typed   TypedConfig   `toml:"typed"`
	Plugin  PluginConfig  `toml:"plugin"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log output. Empty discards logs, since the terminal
	// belongs to the editor screen.
	File string `toml:"file"`
}

// EditorConfig configures opened editors.
type EditorConfig struct {
	ReadOnly bool `toml:"readOnly"`
}

// TypedConfig configures the custom typed-input handlers installed at startup.
type TypedConfig struct {
	// Enabled installs the marker handler.
	Enabled bool `toml:"enabled"`
	// Marker is the text inserted at the start of the document per keystroke.
	Marker string `toml:"marker"`
	// Mode is "wrap" or "replace".
	Mode string `toml:"mode"`
	// Script is an optional Lua script installed after the marker handler.
	Script string `toml:"script"`
}

// PluginConfig locates the plugin manifest.
type PluginConfig struct {
	// Manifest is a YAML manifest path; empty uses the built-in manifest.
	Manifest string `toml:"manifest"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Typed: TypedConfig{
			Enabled: true,
			Marker:  typed.DefaultMarker,
			Mode:    string(typed.ModeWrap),
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "edbasics", "config.toml")
}

// Load builds a configuration from defaults, the file at path, and the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes the TOML file at path over cfg.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.decode(path, data)
}

func (c *Config) decode(source string, data []byte) error {
	if err := toml.Unmarshal(data, c); err != nil {
		pe := &ParseError{Path: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		return pe
	}
	return nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	if _, err := typed.ParseMode(c.Typed.Mode); err != nil {
		return fmt.Errorf("config: typed.mode: %w", err)
	}
	return nil
}

// TypedMode returns the parsed typed handler mode.
func (c *Config) TypedMode() typed.Mode {
	m, err := typed.ParseMode(c.Typed.Mode)
	if err != nil {
		return typed.ModeWrap
	}
	return m
}
