package planner

import (
	"fmt"

	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/prereq"
)

// Solve computes an optimal plan for in.
//
// Stages:
//  1. Validate the instance (sentinel errors, no panics).
//  2. All-pairs travel times via matrix.AllPairs.
//  3. Prerequisite bitmasks via prereq.New.
//  4. DP forward pass, selection, reconstruction.
//
// A plan with Score 0 and no actions is a valid outcome, not an error.
func Solve(in *Instance, opts ...Option) (*Plan, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, err := validateInstance(in, cfg.MaxLocations)
	if err != nil {
		return nil, err
	}

	apsp := []matrix.Option{
		matrix.WithAlgorithm(cfg.APSP),
		matrix.WithParallelism(cfg.Parallelism),
	}
	if cfg.Routes {
		apsp = append(apsp, matrix.WithRoutes())
	}
	table, err := matrix.AllPairs(in.Graph, apsp...)
	if err != nil {
		return nil, fmt.Errorf("planner: distances: %w", err)
	}

	checker, err := prereq.New(n, in.Prerequisites)
	if err != nil {
		return nil, fmt.Errorf("planner: prerequisites: %w", err)
	}

	e, err := NewEngine(in, table, checker, opts...)
	if err != nil {
		return nil, err
	}
	e.Run()

	sel, err := e.Select()
	if err != nil {
		return nil, err
	}

	return e.plan(in, sel)
}

// plan assembles the public result for sel.
func (e *Engine) plan(in *Instance, sel Selection) (*Plan, error) {
	p := &Plan{
		Budget:    in.Budget,
		Actions:   []Action{},
		Completed: []CompletedTask{},
		Stats:     e.stats,
	}
	if sel.Score == 0 {
		return p, nil
	}

	actions, err := e.Reconstruct(sel)
	if err != nil {
		return nil, err
	}

	p.Score = sel.Score
	p.TotalTime = sel.Total()
	p.Mask = sel.Mask
	p.End = sel.Location
	p.Actions = actions
	for loc := 0; loc < e.n; loc++ {
		if sel.Mask&(uint64(1)<<uint(loc)) == 0 {
			continue
		}
		p.Completed = append(p.Completed, CompletedTask{
			Location: loc,
			Score:    in.Scores[loc],
			Duration: in.Durations[loc],
		})
	}

	return p, nil
}
