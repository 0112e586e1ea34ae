// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go — functional options for AllPairs.
// Option constructors panic on meaningless inputs; AllPairs itself never panics.

package matrix

import "fmt"

// Algorithm selects the engine used to fill a Table.
type Algorithm int

const (
	// Dijkstra runs the single-source engine once per location.
	Dijkstra Algorithm = iota

	// FloydWarshall runs the dense O(N³) closure.
	FloydWarshall
)

// String returns the configuration name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case FloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a configuration name back to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "dijkstra":
		return Dijkstra, nil
	case "floyd-warshall", "floydwarshall", "fw":
		return FloydWarshall, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
}

// Options configures AllPairs.
type Options struct {
	Algorithm   Algorithm
	Parallelism int  // goroutines for the Dijkstra fan-out; ≤1 runs sequentially
	Routes      bool // keep predecessor vectors for Route
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// DefaultOptions returns sequential Dijkstra without routes.
func DefaultOptions() Options {
	return Options{Algorithm: Dijkstra, Parallelism: 1}
}

// WithAlgorithm selects the engine.
func WithAlgorithm(a Algorithm) Option {
	if a != Dijkstra && a != FloydWarshall {
		panic(fmt.Sprintf("matrix: WithAlgorithm(%d)", int(a)))
	}
	return func(o *Options) { o.Algorithm = a }
}

// WithParallelism bounds the number of concurrent single-source runs.
// Panics on k < 1. Ignored by FloydWarshall.
func WithParallelism(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("matrix: WithParallelism(%d)", k))
	}
	return func(o *Options) { o.Parallelism = k }
}

// WithRoutes keeps predecessor vectors so Route works on the result.
func WithRoutes() Option {
	return func(o *Options) { o.Routes = true }
}
