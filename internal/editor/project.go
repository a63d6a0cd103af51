package editor

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Project is the workspace an editor belongs to.
type Project struct {
	ID   uuid.UUID
	Name string
	Root string
}

// NewProject creates a project rooted at root, named after its base directory.
func NewProject(root string) *Project {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Project{
		ID:   uuid.New(),
		Name: filepath.Base(root),
		Root: root,
	}
}
