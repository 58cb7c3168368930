package profile

import (
	"errors"
	"fmt"
	"os"

	"strategic_posture/pkg/core/utils"
)

// ErrInvalidDefinition marks a loaded definition that cannot be used.
var ErrInvalidDefinition = errors.New("invalid profile definition")

// Document is the on-disk shape of a profiles file.
type Document struct {
	Profiles []Definition `json:"profiles"`
}

// ParseDefinitions decodes a profiles document. JSON, Hjson and lightly
// broken JSON are all accepted.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var doc Document
	if err := utils.SmartParse(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	for i, d := range doc.Profiles {
		if d.Name == "" {
			return nil, fmt.Errorf("profile #%d: %w: empty name", i, ErrInvalidDefinition)
		}
		for _, base := range []*float64{d.BudgetBase, d.PersonnelBase, d.ExercisesBase} {
			if base != nil && *base < 0 {
				return nil, fmt.Errorf("profile %q: %w: negative base", d.Name, ErrInvalidDefinition)
			}
		}
	}
	return doc.Profiles, nil
}

// LoadDefinitions reads and parses a profiles file.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}
	return ParseDefinitions(data)
}
