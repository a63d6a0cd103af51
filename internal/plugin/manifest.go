package plugin

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultManifest []byte

// Manifest describes a plugin and the actions it contributes.
type Manifest struct {
	Name        string               `yaml:"name"`
	Version     string               `yaml:"version"`
	DisplayName string               `yaml:"displayName"`
	Description string               `yaml:"description"`
	Actions     []ActionContribution `yaml:"actions"`
}

// ActionContribution declares one user-invocable action.
type ActionContribution struct {
	ID             string `yaml:"id"`
	Label          string `yaml:"label"`
	Description    string `yaml:"description"`
	Implementation string `yaml:"implementation"` // name of a built-in action
	Key            string `yaml:"key"`            // e.g. "ctrl+d"
	Group          string `yaml:"group"`          // menu group
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)

// DefaultManifest returns the built-in manifest.
func DefaultManifest() *Manifest {
	m, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("plugin: built-in manifest is invalid: %v", err))
	}
	return m
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates manifest YAML. Unknown fields are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Version == "" {
		m.Version = "0.0.0"
	}
	if m.DisplayName == "" {
		m.DisplayName = m.Name
	}
}

// Validate checks required fields and action uniqueness.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("%w: %s", ErrInvalidName, m.Name)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("%w: %s", ErrInvalidVersion, m.Version)
	}

	seen := make(map[string]bool, len(m.Actions))
	for i, a := range m.Actions {
		if a.ID == "" {
			return fmt.Errorf("%w at index %d", ErrMissingActionID, i)
		}
		if a.Label == "" {
			return fmt.Errorf("%w at index %d (id: %s)", ErrMissingActionLabel, i, a.ID)
		}
		if a.Implementation == "" {
			return fmt.Errorf("%w at index %d (id: %s)", ErrMissingImplementation, i, a.ID)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateActionID, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Action returns the contribution with the given id.
func (m *Manifest) Action(id string) (ActionContribution, bool) {
	for _, a := range m.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return ActionContribution{}, false
}
