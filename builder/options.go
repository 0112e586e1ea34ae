// SPDX-License-Identifier: MIT
// Package: dayplan/builder
//
// options.go — functional options.
// Option constructors panic on meaningless inputs; RandomInstance itself
// returns sentinel errors and never panics.

package builder

import "math/rand"

// BuilderOption customizes RandomInstance.
type BuilderOption func(*builderConfig)

// builderConfig aggregates every knob. Passed by value to the generator.
type builderConfig struct {
	rng        *rand.Rand
	weightFn   func(*rand.Rand) int64
	edgeP      float64
	prereqP    float64
	cyclic     bool
	maxScore   int64
	maxDur     int64
	budget     int64 // <0 means derive from size
	multiEdges bool
}

// Deterministic defaults.
const (
	defaultEdgeP    = 0.5
	defaultPrereqP  = 0.1
	defaultMaxScore = int64(100)
	defaultMaxDur   = int64(10)
	defaultMaxTrav  = int64(10)
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(r *rand.Rand) int64 { return 1 + r.Int63n(defaultMaxTrav) },
		edgeP:    defaultEdgeP,
		prereqP:  defaultPrereqP,
		maxScore: defaultMaxScore,
		maxDur:   defaultMaxDur,
		budget:   -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn overrides the travel-time generator. It must return
// non-negative values. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithEdgeProbability sets the per-pair road probability.
func WithEdgeProbability(p float64) BuilderOption {
	return func(c *builderConfig) { c.edgeP = p }
}

// WithPrereqProbability sets the per-pair prerequisite probability.
func WithPrereqProbability(q float64) BuilderOption {
	return func(c *builderConfig) { c.prereqP = q }
}

// WithCyclicPrereqs allows a dependency to have a larger index than its
// task, so cycles may appear.
func WithCyclicPrereqs() BuilderOption {
	return func(c *builderConfig) { c.cyclic = true }
}

// WithMaxScore bounds task scores to [1, max].
func WithMaxScore(max int64) BuilderOption {
	return func(c *builderConfig) { c.maxScore = max }
}

// WithMaxDuration bounds task durations to [0, max].
func WithMaxDuration(max int64) BuilderOption {
	return func(c *builderConfig) { c.maxDur = max }
}

// WithBudget fixes the time budget.
func WithBudget(t int64) BuilderOption {
	return func(c *builderConfig) { c.budget = t }
}

// WithParallelRoads adds a second, independently weighted road for every
// sampled pair, exercising multi-edge handling downstream.
func WithParallelRoads() BuilderOption {
	return func(c *builderConfig) { c.multiEdges = true }
}
