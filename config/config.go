// Package config loads and validates the run configuration for the
// colomine pipeline from a YAML file.
//
// File layout:
//
//	dataset: ./data/points.csv
//	neighbor_distance: 25.0
//	min_prev: 0.3
//
// Errors (sentinel):
//
//	ErrNoDataset   - the dataset path is missing.
//	ErrBadDistance - neighbor_distance is not positive.
//	ErrBadMinPrev  - min_prev is outside [0, 1].
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation.
var (
	// ErrNoDataset indicates the dataset path is missing from the config.
	ErrNoDataset = errors.New("config: dataset path is empty")

	// ErrBadDistance indicates a non-positive neighbor distance.
	ErrBadDistance = errors.New("config: neighbor_distance must be positive")

	// ErrBadMinPrev indicates a prevalence threshold outside [0, 1].
	ErrBadMinPrev = errors.New("config: min_prev must be in [0, 1]")
)

// Config holds one run's parameters.
type Config struct {
	// Dataset is the path of the CSV instance file.
	Dataset string `yaml:"dataset"`

	// NeighborDistance is the spatial neighbor threshold.
	NeighborDistance float64 `yaml:"neighbor_distance"`

	// MinPrev is the minimum weighted participation index a pattern must
	// reach to be reported, in [0, 1].
	MinPrev float64 `yaml:"min_prev"`
}

// Load reads, parses, and validates the YAML config at path.
func Load(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field against its sentinel.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return ErrNoDataset
	}
	if c.NeighborDistance <= 0 {
		return ErrBadDistance
	}
	if c.MinPrev < 0 || c.MinPrev > 1 {
		return ErrBadMinPrev
	}

	return nil
}
