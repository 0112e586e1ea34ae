package dijkstra

import (
	"errors"
	"math"
)

// Inf is the distance reported for unreachable locations.
const Inf int64 = math.MaxInt64

// noSource marks Options.Source as unset.
const noSource = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source location was provided.
	ErrEmptySource = errors.New("dijkstra: source location not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is not a location of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source location out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting location index (must be set and in range).
// ReturnPath       – if true, return the predecessor vector; otherwise prev is nil.
// MaxDistance      – locations farther than this are left at Inf. Default Inf (no cap).
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Inf (no closed roads).
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting location.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithReturnPath enables generation of the predecessor vector in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered closed. Panics on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source location.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}
