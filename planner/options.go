package planner

import (
	"fmt"

	"github.com/katalvlaran/dayplan/matrix"
)

// Options configures Solve and NewEngine.
type Options struct {
	// APSP selects the all-pairs engine. Default matrix.Dijkstra.
	APSP matrix.Algorithm

	// Parallelism bounds concurrent single-source runs in the all-pairs stage.
	Parallelism int

	// Routes fills Action.Via for moves.
	Routes bool

	// MaxLocations rejects larger instances with ErrTooManyLocations.
	MaxLocations int

	// OnRelax, if non-nil, observes every accepted state improvement.
	OnRelax func(RelaxEvent)
}

// Option represents a functional option for configuring the planner.
type Option func(*Options)

// DefaultOptions returns sequential Dijkstra, no routes and the default cap.
func DefaultOptions() Options {
	return Options{
		APSP:         matrix.Dijkstra,
		Parallelism:  1,
		MaxLocations: DefaultMaxLocations,
	}
}

// WithAPSP selects the all-pairs shortest-path engine.
func WithAPSP(a matrix.Algorithm) Option {
	if a != matrix.Dijkstra && a != matrix.FloydWarshall {
		panic(fmt.Sprintf("planner: WithAPSP(%d)", int(a)))
	}
	return func(o *Options) { o.APSP = a }
}

// WithParallelism bounds concurrent shortest-path runs. Panics on k < 1.
func WithParallelism(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("planner: WithParallelism(%d)", k))
	}
	return func(o *Options) { o.Parallelism = k }
}

// WithRoutes fills Action.Via with the concrete route of every move.
func WithRoutes() Option {
	return func(o *Options) { o.Routes = true }
}

// WithMaxLocations raises or lowers the location cap.
// Panics outside [1, HardMaxLocations].
func WithMaxLocations(n int) Option {
	if n < 1 || n > HardMaxLocations {
		panic(fmt.Sprintf("planner: WithMaxLocations(%d) not in [1,%d]", n, HardMaxLocations))
	}
	return func(o *Options) { o.MaxLocations = n }
}

// WithOnRelax registers a callback run on every accepted improvement.
// Panics on nil.
func WithOnRelax(fn func(RelaxEvent)) Option {
	if fn == nil {
		panic("planner: WithOnRelax(nil)")
	}
	return func(o *Options) { o.OnRelax = fn }
}
