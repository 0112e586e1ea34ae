// SPDX-License-Identifier: MIT
// Package: dayplan/builder
//
// instance.go — RandomInstance.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewLocations).
//   - probabilities in [0,1] (else ErrInvalidProbability).
//   - maxScore ≥ 1, maxDuration ≥ 0 (else ErrInvalidRange).
//   - RNG required (else ErrNeedRandSource).
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
)

const methodRandomInstance = "RandomInstance"

// RandomInstance samples a planning instance over n locations.
func RandomInstance(n int, opts ...BuilderOption) (*planner.Instance, error) {
	cfg := newBuilderConfig(opts...)

	if n < 1 {
		return nil, builderErrorf(methodRandomInstance, fmt.Errorf("n=%d: %w", n, ErrTooFewLocations))
	}
	if cfg.edgeP < 0 || cfg.edgeP > 1 || cfg.prereqP < 0 || cfg.prereqP > 1 {
		return nil, builderErrorf(methodRandomInstance,
			fmt.Errorf("p=%.3f q=%.3f: %w", cfg.edgeP, cfg.prereqP, ErrInvalidProbability))
	}
	if cfg.maxScore < 1 || cfg.maxDur < 0 {
		return nil, builderErrorf(methodRandomInstance,
			fmt.Errorf("maxScore=%d maxDuration=%d: %w", cfg.maxScore, cfg.maxDur, ErrInvalidRange))
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomInstance, ErrNeedRandSource)
	}
	rng := cfg.rng

	var gopts []core.GraphOption
	if cfg.multiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, builderErrorf(methodRandomInstance, err)
	}

	// 1) Roads, ordered pairs i asc, j asc.
	var i, j int
	var maxW int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || rng.Float64() >= cfg.edgeP {
				continue
			}
			roads := 1
			if cfg.multiEdges {
				roads = 2
			}
			for r := 0; r < roads; r++ {
				w := cfg.weightFn(rng)
				if w < 0 {
					return nil, builderErrorf(methodRandomInstance,
						fmt.Errorf("weightFn returned %d: %w", w, ErrInvalidRange))
				}
				if w > maxW {
					maxW = w
				}
				if err = g.AddEdge(i, j, w); err != nil {
					return nil, builderErrorf(methodRandomInstance, err)
				}
			}
		}
	}

	// 2) Tasks; home stays (0, 0).
	in := &planner.Instance{
		Graph:     g,
		Scores:    make([]int64, n),
		Durations: make([]int64, n),
	}
	var sumDur int64
	for i = 1; i < n; i++ {
		in.Scores[i] = 1 + rng.Int63n(cfg.maxScore)
		in.Durations[i] = rng.Int63n(cfg.maxDur + 1)
		sumDur += in.Durations[i]
	}

	// 3) Prerequisites among non-home tasks.
	for i = 1; i < n; i++ {
		for j = 1; j < n; j++ {
			if i == j || (!cfg.cyclic && j > i) {
				continue
			}
			if rng.Float64() < cfg.prereqP {
				in.Prerequisites = append(in.Prerequisites, prereq.Relation{Task: i, Dependency: j})
			}
		}
	}

	// 4) Budget: roughly half of what visiting everything would take.
	in.Budget = cfg.budget
	if in.Budget < 0 {
		in.Budget = (sumDur + int64(n)*maxW) / 2
	}

	return in, nil
}
