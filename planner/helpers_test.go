package planner_test

import (
	"testing"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
	"github.com/stretchr/testify/require"
)

// road is a directed edge literal for test fixtures.
type road struct {
	from, to int
	w        int64
}

// mustInstance builds an instance over n locations; fails the test on error.
func mustInstance(t *testing.T, n int, roads []road, scores, durations []int64, budget int64, rel ...prereq.Relation) *planner.Instance {
	t.Helper()
	g, err := core.NewGraph(n, core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, err)
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r.from, r.to, r.w))
	}

	return &planner.Instance{
		Graph:         g,
		Scores:        scores,
		Durations:     durations,
		Budget:        budget,
		Prerequisites: rel,
	}
}

// twoStops is the smallest non-trivial instance: one task 2 minutes away.
func twoStops(t *testing.T, budget int64) *planner.Instance {
	return mustInstance(t, 2,
		[]road{{0, 1, 2}, {1, 0, 2}},
		[]int64{0, 10}, []int64{0, 5}, budget)
}

// checkPlan asserts the structural properties every plan must satisfy.
func checkPlan(t *testing.T, in *planner.Instance, p *planner.Plan) {
	t.Helper()
	n := in.Order()

	if p.Score == 0 {
		require.Empty(t, p.Actions)
		require.Empty(t, p.Completed)
		return
	}

	checker, err := prereq.New(n, in.Prerequisites)
	require.NoError(t, err)

	var (
		mask uint64
		loc  = planner.Home
		now  int64
	)
	for i, a := range p.Actions {
		require.Equal(t, now, a.Start, "action %d not contiguous", i)
		require.GreaterOrEqual(t, a.End, a.Start)
		require.LessOrEqual(t, a.End, in.Budget)
		require.Equal(t, loc, a.From, "action %d starts elsewhere", i)

		switch a.Kind {
		case planner.Work:
			require.Equal(t, a.From, a.To)
			bit := uint64(1) << uint(a.To)
			require.Zero(t, mask&bit, "task %d done twice", a.To)
			require.True(t, checker.CanPerform(mask, a.To), "task %d before its prerequisites", a.To)
			require.Equal(t, in.Durations[a.To], a.End-a.Start)
			mask |= bit
		case planner.Move:
			require.NotEqual(t, a.From, a.To)
		default:
			t.Fatalf("action %d has kind %v", i, a.Kind)
		}
		require.Equal(t, mask, a.Mask)
		loc, now = a.To, a.End
	}

	require.Equal(t, planner.Home, loc, "plan must end at home")
	require.Equal(t, p.TotalTime, now)
	require.LessOrEqual(t, p.TotalTime, in.Budget)
	require.Equal(t, p.Mask, mask)

	var sum int64
	for _, c := range p.Completed {
		require.NotZero(t, mask&(uint64(1)<<uint(c.Location)))
		sum += c.Score
	}
	require.Equal(t, p.Score, sum)
}
