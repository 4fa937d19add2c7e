package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/panelwright/wallplan/internal/model"
)

// DefaultLeftoversPath returns the default file path for the persisted
// leftover inventory. This is located at ~/.wallplan/leftovers.json.
func DefaultLeftoversPath() string {
	return filepath.Join(DefaultConfigDir(), "leftovers.json")
}

// SaveLeftovers writes the leftover inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveLeftovers(path string, leftovers []model.Leftover) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if leftovers == nil {
		leftovers = []model.Leftover{}
	}
	data, err := json.MarshalIndent(leftovers, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLeftovers reads the leftover inventory from the specified JSON file.
// If the file does not exist, it returns an empty inventory with no error.
func LoadLeftovers(path string) ([]model.Leftover, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Leftover{}, nil
		}
		return nil, err
	}
	var leftovers []model.Leftover
	if err := json.Unmarshal(data, &leftovers); err != nil {
		return nil, err
	}
	// Drop pieces that have been cut down to nothing
	usable := leftovers[:0]
	for _, l := range leftovers {
		if l.Usable() {
			usable = append(usable, l)
		}
	}
	return usable, nil
}

// ImportLeftovers reads leftovers from a user-specified JSON file and merges
// them with the existing inventory. Duplicate IDs are skipped.
func ImportLeftovers(path string, existing []model.Leftover) ([]model.Leftover, error) {
	imported, err := LoadLeftovers(path)
	if err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing))
	for _, l := range existing {
		ids[l.ID] = true
	}
	for _, l := range imported {
		if !ids[l.ID] {
			existing = append(existing, l)
			ids[l.ID] = true
		}
	}
	return existing, nil
}
