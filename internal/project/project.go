// Package project handles persistence of projects, leftover inventory,
// the panel catalog, and application configuration as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/panelwright/wallplan/internal/model"
)

// FileExtension is the extension used for saved project files.
const FileExtension = ".wallplan"

// SaveProject writes a project to the given path as indented JSON.
// It creates any missing parent directories automatically.
func SaveProject(path string, p model.Project) error {
	if p.Name == "" {
		p.Name = projectNameFromPath(path)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
func LoadProject(path string) (model.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Name == "" {
		p.Name = projectNameFromPath(path)
	}
	if p.Walls == nil {
		p.Walls = []model.Wall{}
	}
	return p, nil
}

// projectNameFromPath derives a project name from the file name.
func projectNameFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if base == "" {
		return "Untitled"
	}
	return base
}
