package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EDBASICS_"

// envBinding maps an environment variable to a config field.
type envBinding struct {
	name string
	set  func(c *Config, v string) error
}

func stringField(f func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*f(c) = v
		return nil
	}
}

// enumField is stringField for enumerated settings, where an empty value
// has no meaning and is ignored.
func enumField(f func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		if v != "" {
			*f(c) = v
		}
		return nil
	}
}

func boolField(f func(c *Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*f(c) = b
		return nil
	}
}

var envBindings = []envBinding{
	{EnvPrefix + "LOG_LEVEL", enumField(func(c *Config) *string { return &c.Logging.Level })},
	{EnvPrefix + "LOG_FILE", stringField(func(c *Config) *string { return &c.Logging.File })},
	{EnvPrefix + "READONLY", boolField(func(c *Config) *bool { return &c.Editor.ReadOnly })},
	{EnvPrefix + "TYPED_ENABLED", boolField(func(c *Config) *bool { return &c.Typed.Enabled })},
	{EnvPrefix + "TYPED_MODE", enumField(func(c *Config) *string { return &c.Typed.Mode })},
	{EnvPrefix + "TYPED_MARKER", stringField(func(c *Config) *string { return &c.Typed.Marker })},
	{EnvPrefix + "TYPED_SCRIPT", stringField(func(c *Config) *string { return &c.Typed.Script })},
	{EnvPrefix + "MANIFEST", stringField(func(c *Config) *string { return &c.Plugin.Manifest })},
}

// applyEnv overrides fields from environment variables. An empty value
// clears a free-form string such as the log file, and is ignored for
// enumerated and boolean settings.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(b.name)
		if !ok {
			continue
		}
		if err := b.set(c, v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, b.name, v, err)
		}
	}
	return nil
}
