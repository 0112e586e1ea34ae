package config

import (
	"path/filepath"
	"runtime"

	"github.com/katalvlaran/dayplan/planner"
)

// DefaultConfig returns the built-in settings: Dijkstra fan-out over all
// CPUs, the planner's default location cap, text output, history in
// .dayplan/history.db.
func DefaultConfig() *Config {
	return &Config{
		APSP:         "dijkstra",
		Parallelism:  runtime.NumCPU(),
		MaxLocations: planner.DefaultMaxLocations,
		Format:       FormatText,
		HistoryDB:    filepath.Join(".dayplan", "history.db"),
	}
}
