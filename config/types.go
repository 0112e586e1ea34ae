// Package config loads the dayplan CLI settings from JSON files.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/planner"
)

// ErrInvalid indicates a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the CLI defaults; command-line flags override them.
type Config struct {
	APSP         string `json:"apsp"`
	Parallelism  int    `json:"parallelism"`
	MaxLocations int    `json:"max_locations"`
	Format       string `json:"format"`
	HistoryDB    string `json:"history_db"`
	Routes       bool   `json:"routes"`
}

// fileConfig is the on-disk shape; nil fields leave the base untouched.
type fileConfig struct {
	APSP         *string `json:"apsp"`
	Parallelism  *int    `json:"parallelism"`
	MaxLocations *int    `json:"max_locations"`
	Format       *string `json:"format"`
	HistoryDB    *string `json:"history_db"`
	Routes       *bool   `json:"routes"`
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := matrix.ParseAlgorithm(c.APSP); err != nil {
		return fmt.Errorf("%w: apsp %q", ErrInvalid, c.APSP)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism %d", ErrInvalid, c.Parallelism)
	}
	if c.MaxLocations < 1 || c.MaxLocations > planner.HardMaxLocations {
		return fmt.Errorf("%w: max_locations %d not in [1,%d]", ErrInvalid, c.MaxLocations, planner.HardMaxLocations)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}

	return nil
}

// PlannerOptions translates the settings into planner options.
func (c *Config) PlannerOptions() ([]planner.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	alg, _ := matrix.ParseAlgorithm(c.APSP)
	opts := []planner.Option{
		planner.WithAPSP(alg),
		planner.WithParallelism(c.Parallelism),
		planner.WithMaxLocations(c.MaxLocations),
	}
	if c.Routes {
		opts = append(opts, planner.WithRoutes())
	}

	return opts, nil
}
