// Package spec loads and validates the YAML town specification that drives
// map generation.
package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TownSpec describes the town to generate. Distances are meters, areas
// square meters.
type TownSpec struct {
	Name       string  `yaml:"name"`
	Seed       int64   `yaml:"seed"`
	Radius     float64 `yaml:"radius"`
	Wards      int     `yaml:"wards"`
	ParcelArea float64 `yaml:"parcel_area"`
	HouseRatio float64 `yaml:"house_ratio"`
}

// Default returns a spec with sensible defaults for a small town.
func Default() *TownSpec {
	return &TownSpec{
		Name:       "town",
		Seed:       1,
		Radius:     400,
		Wards:      9,
		ParcelArea: 1200,
		HouseRatio: 0.4,
	}
}

// Load reads a town spec from a YAML file.
func Load(path string) (*TownSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	spec := Default()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return spec, nil
}

// LoadProject loads a town spec from a project directory.
// It looks for town.yaml in the given directory.
func LoadProject(projectDir string) (*TownSpec, error) {
	specPath := filepath.Join(projectDir, "town.yaml")
	return Load(specPath)
}
