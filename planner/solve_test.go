package planner_test

import (
	"testing"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
	"github.com/stretchr/testify/require"
)

func TestSolve_HomeOnly(t *testing.T) {
	in := mustInstance(t, 1, nil, []int64{0}, []int64{0}, 0)
	p, err := planner.Solve(in)
	require.NoError(t, err)
	require.True(t, p.Empty())
	require.Zero(t, p.TotalTime)
	require.Empty(t, p.Actions)
	require.Equal(t, uint64(2), p.Stats.States)
}

func TestSolve_SingleTask(t *testing.T) {
	in := twoStops(t, 20)
	p, err := planner.Solve(in)
	require.NoError(t, err)

	require.Equal(t, int64(10), p.Score)
	require.Equal(t, int64(9), p.TotalTime)
	require.Equal(t, uint64(0b10), p.Mask)
	require.Len(t, p.Actions, 3)

	require.Equal(t, planner.Action{Kind: planner.Move, From: 0, To: 1, Start: 0, End: 2}, p.Actions[0])
	require.Equal(t, planner.Action{Kind: planner.Work, From: 1, To: 1, Start: 2, End: 7, Mask: 0b10}, p.Actions[1])
	back := p.Actions[2]
	require.Equal(t, planner.Move, back.Kind)
	require.Equal(t, 1, back.From)
	require.Equal(t, 0, back.To)
	require.Equal(t, int64(7), back.Start)
	require.Equal(t, int64(9), back.End)

	require.Equal(t, []planner.CompletedTask{{Location: 1, Score: 10, Duration: 5}}, p.Completed)
	checkPlan(t, in, p)
}

func TestSolve_UnreachablePrerequisite(t *testing.T) {
	// 1 needs 2, but 2 is cut off from home; 3 is an ordinary task.
	in := mustInstance(t, 4,
		[]road{{0, 1, 1}, {1, 0, 1}, {0, 3, 1}, {3, 0, 1}, {2, 1, 1}},
		[]int64{0, 100, 5, 4}, []int64{0, 1, 1, 1}, 1000,
		prereq.Relation{Task: 1, Dependency: 2},
	)
	p, err := planner.Solve(in)
	require.NoError(t, err)
	require.Equal(t, int64(4), p.Score)
	require.Equal(t, uint64(0b1000), p.Mask)
	checkPlan(t, in, p)
}

func TestSolve_BudgetBoundary(t *testing.T) {
	p, err := planner.Solve(twoStops(t, 9))
	require.NoError(t, err)
	require.Equal(t, int64(10), p.Score)
	require.Equal(t, int64(9), p.TotalTime)

	p, err = planner.Solve(twoStops(t, 8))
	require.NoError(t, err)
	require.True(t, p.Empty())
	require.Empty(t, p.Actions)
}

func TestSolve_PrerequisiteOrder(t *testing.T) {
	// 1 is next door but requires 2, which is further away.
	in := mustInstance(t, 3,
		[]road{{0, 1, 1}, {1, 0, 1}, {0, 2, 3}, {2, 0, 3}, {2, 1, 1}, {1, 2, 1}},
		[]int64{0, 8, 2}, []int64{0, 1, 1}, 100,
		prereq.Relation{Task: 1, Dependency: 2},
	)
	p, err := planner.Solve(in)
	require.NoError(t, err)
	require.Equal(t, int64(10), p.Score)
	checkPlan(t, in, p)

	var order []int
	for _, a := range p.Actions {
		if a.Kind == planner.Work {
			order = append(order, a.To)
		}
	}
	require.Equal(t, []int{2, 1}, order)
}

func TestSolve_CyclicPrerequisites(t *testing.T) {
	in := mustInstance(t, 3,
		[]road{{0, 1, 1}, {1, 0, 1}, {0, 2, 1}, {2, 0, 1}},
		[]int64{0, 5, 5}, []int64{0, 1, 1}, 100,
		prereq.Relation{Task: 1, Dependency: 2},
		prereq.Relation{Task: 2, Dependency: 1},
	)
	p, err := planner.Solve(in)
	require.NoError(t, err)
	require.True(t, p.Empty())
}

func TestSolve_MovesThroughIntermediate(t *testing.T) {
	// The direct road 0→2 is slower than 0→1→2.
	in := mustInstance(t, 3,
		[]road{{0, 1, 1}, {1, 2, 1}, {0, 2, 5}, {2, 0, 1}},
		[]int64{0, 0, 7}, []int64{0, 0, 2}, 10,
	)
	p, err := planner.Solve(in, planner.WithRoutes())
	require.NoError(t, err)
	require.Equal(t, int64(7), p.Score)
	require.Equal(t, int64(5), p.TotalTime)
	checkPlan(t, in, p)

	var moves [][]int
	for _, a := range p.Actions {
		if a.Kind == planner.Move {
			moves = append(moves, a.Via)
		}
	}
	require.Equal(t, [][]int{{0, 1, 2}, {2, 0}}, moves)
}

func TestSolve_ZeroWeightRoads(t *testing.T) {
	in := mustInstance(t, 3,
		[]road{{0, 1, 0}, {1, 0, 0}, {1, 2, 0}, {2, 1, 0}},
		[]int64{0, 1, 2}, []int64{0, 0, 0}, 0,
	)
	p, err := planner.Solve(in)
	require.NoError(t, err)
	require.Equal(t, int64(3), p.Score)
	require.Zero(t, p.TotalTime)
	checkPlan(t, in, p)
}

func TestSolve_TieBreakPrefersShorterPlan(t *testing.T) {
	// Tasks 1 and 2 are worth the same and only one fits; 2 is closer.
	in := mustInstance(t, 3,
		[]road{{0, 1, 4}, {1, 0, 4}, {0, 2, 1}, {2, 0, 1}},
		[]int64{0, 6, 6}, []int64{0, 1, 1}, 9,
	)
	p, err := planner.Solve(in)
	require.NoError(t, err)
	require.Equal(t, int64(6), p.Score)
	require.Equal(t, uint64(0b100), p.Mask)
	require.Equal(t, int64(3), p.TotalTime)
}

func TestSolve_Validation(t *testing.T) {
	_, err := planner.Solve(nil)
	require.ErrorIs(t, err, planner.ErrNilInstance)

	_, err = planner.Solve(&planner.Instance{})
	require.ErrorIs(t, err, planner.ErrNilGraph)

	in := twoStops(t, 10)
	in.Scores = []int64{0}
	_, err = planner.Solve(in)
	require.ErrorIs(t, err, planner.ErrDimensionMismatch)

	in = twoStops(t, -1)
	_, err = planner.Solve(in)
	require.ErrorIs(t, err, planner.ErrNegativeValue)

	in = twoStops(t, 10)
	in.Durations[1] = -3
	_, err = planner.Solve(in)
	require.ErrorIs(t, err, planner.ErrNegativeValue)

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	big := &planner.Instance{Graph: g, Scores: make([]int64, 4), Durations: make([]int64, 4)}
	_, err = planner.Solve(big, planner.WithMaxLocations(3))
	require.ErrorIs(t, err, planner.ErrTooManyLocations)

	in = twoStops(t, 10)
	in.Prerequisites = []prereq.Relation{{Task: 1, Dependency: 7}}
	_, err = planner.Solve(in)
	require.ErrorIs(t, err, prereq.ErrTaskOutOfRange)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { planner.WithParallelism(0) })
	require.Panics(t, func() { planner.WithMaxLocations(0) })
	require.Panics(t, func() { planner.WithMaxLocations(planner.HardMaxLocations + 1) })
	require.Panics(t, func() { planner.WithOnRelax(nil) })
	require.Panics(t, func() { planner.WithAPSP(matrix.Algorithm(42)) })
}

func TestSolve_APSPAgree(t *testing.T) {
	in := mustInstance(t, 4,
		[]road{{0, 1, 3}, {1, 2, 1}, {2, 3, 1}, {3, 0, 2}, {0, 2, 6}, {2, 0, 1}},
		[]int64{0, 3, 4, 5}, []int64{0, 2, 2, 2}, 14,
	)
	a, err := planner.Solve(in, planner.WithAPSP(matrix.Dijkstra), planner.WithParallelism(4))
	require.NoError(t, err)
	b, err := planner.Solve(in, planner.WithAPSP(matrix.FloydWarshall))
	require.NoError(t, err)

	require.Equal(t, a.Score, b.Score)
	require.Equal(t, a.TotalTime, b.TotalTime)
	checkPlan(t, in, a)
	checkPlan(t, in, b)
}

func TestActionKind_Text(t *testing.T) {
	for _, k := range []planner.ActionKind{planner.None, planner.Work, planner.Move} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var got planner.ActionKind
		require.NoError(t, got.UnmarshalText(b))
		require.Equal(t, k, got)
	}
	var k planner.ActionKind
	require.Error(t, k.UnmarshalText([]byte("jump")))
	require.Equal(t, "ActionKind(9)", planner.ActionKind(9).String())
}
