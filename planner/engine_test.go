package planner_test

import (
	"testing"

	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, in *planner.Instance, opts ...planner.Option) *planner.Engine {
	t.Helper()
	table, err := matrix.AllPairs(in.Graph, matrix.WithRoutes())
	require.NoError(t, err)
	checker, err := prereq.New(in.Order(), in.Prerequisites)
	require.NoError(t, err)
	e, err := planner.NewEngine(in, table, checker, opts...)
	require.NoError(t, err)

	return e
}

func TestEngine_NotRun(t *testing.T) {
	e := newEngine(t, twoStops(t, 20))
	_, err := e.Select()
	require.ErrorIs(t, err, planner.ErrEngineNotRun)
	_, err = e.Reconstruct(planner.Selection{})
	require.ErrorIs(t, err, planner.ErrEngineNotRun)
	require.Equal(t, planner.Inf, e.Elapsed(0, planner.Home))
}

func TestEngine_Mismatch(t *testing.T) {
	in := twoStops(t, 20)
	table, err := matrix.NewTable(3)
	require.NoError(t, err)
	checker, err := prereq.New(2, nil)
	require.NoError(t, err)
	_, err = planner.NewEngine(in, table, checker)
	require.ErrorIs(t, err, planner.ErrTableMismatch)

	table, err = matrix.NewTable(2)
	require.NoError(t, err)
	_, err = planner.NewEngine(in, table, nil)
	require.ErrorIs(t, err, planner.ErrTableMismatch)
}

func TestEngine_StatesAndParents(t *testing.T) {
	e := newEngine(t, twoStops(t, 20))
	e.Run()

	require.Equal(t, int64(0), e.Elapsed(0, 0))
	require.Equal(t, int64(2), e.Elapsed(0, 1))
	require.Equal(t, int64(7), e.Elapsed(0b10, 1))
	require.Equal(t, int64(9), e.Elapsed(0b10, 0))
	require.Equal(t, planner.Inf, e.Elapsed(1<<5, 0))

	_, ok := e.Parent(0, planner.Home)
	require.False(t, ok)

	p, ok := e.Parent(0b10, 1)
	require.True(t, ok)
	require.Equal(t, planner.ParentRecord{Mask: 0, Location: 1, Kind: planner.Work}, p)

	p, ok = e.Parent(0b10, 0)
	require.True(t, ok)
	require.Equal(t, planner.ParentRecord{Mask: 0b10, Location: 1, Kind: planner.Move}, p)

	require.Equal(t, int64(10), e.Score(0b10))
	require.Equal(t, int64(10), e.Score(0b11))
	require.Zero(t, e.Score(1<<9))

	st := e.Stats()
	require.Equal(t, 2, st.Locations)
	require.Equal(t, uint64(8), st.States)
	require.NotZero(t, st.Reached)

	// work at home is a zero-duration step, so home-bit states are reached too
	require.Equal(t, int64(0), e.Elapsed(0b01, 0))
	require.Equal(t, int64(2), e.Elapsed(0b01, 1))
	p, ok = e.Parent(0b01, 0)
	require.True(t, ok)
	require.Equal(t, planner.ParentRecord{Mask: 0, Location: 0, Kind: planner.Work}, p)
	require.Equal(t, uint64(8), st.Reached)

	_, err := e.Reconstruct(planner.Selection{Mask: 1 << 5, Location: 1})
	require.ErrorIs(t, err, planner.ErrStateOutOfRange)
}

func TestEngine_SelectEndsAtHome(t *testing.T) {
	e := newEngine(t, twoStops(t, 20))
	e.Run()
	sel, err := e.Select()
	require.NoError(t, err)

	// (0b10, 0) and (0b10, 1) both total 9; the first in order wins.
	require.Equal(t, uint64(0b10), sel.Mask)
	require.Equal(t, 0, sel.Location)
	require.Equal(t, int64(9), sel.Total())
	require.Zero(t, sel.ReturnTime)

	acts, err := e.Reconstruct(sel)
	require.NoError(t, err)
	require.Len(t, acts, 3)
	for _, a := range acts {
		require.False(t, a.Return)
	}
	require.Equal(t, []int{1, 0}, acts[2].Via)
}

func TestEngine_UnreachableStateRejected(t *testing.T) {
	// budget 3 reaches location 1 but not the end of its task
	e := newEngine(t, twoStops(t, 3))
	e.Run()
	require.Equal(t, planner.Inf, e.Elapsed(0b10, 1))

	_, err := e.Reconstruct(planner.Selection{Mask: 0b10, Location: 1})
	require.ErrorIs(t, err, planner.ErrStateOutOfRange)
}

func TestEngine_RoutesFollowTable(t *testing.T) {
	in := twoStops(t, 20)
	checker, err := prereq.New(in.Order(), nil)
	require.NoError(t, err)

	routed, err := matrix.AllPairs(in.Graph, matrix.WithRoutes())
	require.NoError(t, err)
	e, err := planner.NewEngine(in, routed, checker)
	require.NoError(t, err)
	e.Run()
	sel, err := e.Select()
	require.NoError(t, err)
	acts, err := e.Reconstruct(sel)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, acts[0].Via)

	bare, err := matrix.AllPairs(in.Graph)
	require.NoError(t, err)
	e, err = planner.NewEngine(in, bare, checker)
	require.NoError(t, err)
	e.Run()
	acts, err = e.Reconstruct(sel)
	require.NoError(t, err)
	for _, a := range acts {
		require.Nil(t, a.Via)
	}
}

func TestEngine_ReturnFlag(t *testing.T) {
	e := newEngine(t, twoStops(t, 20))
	e.Run()

	acts, err := e.Reconstruct(planner.Selection{Mask: 0b10, Location: 1, Score: 10, Elapsed: 7, ReturnTime: 2})
	require.NoError(t, err)
	require.Len(t, acts, 3)
	require.True(t, acts[2].Return)
	require.Equal(t, int64(9), acts[2].End)
}

func TestEngine_RunIsIdempotent(t *testing.T) {
	in := mustInstance(t, 4,
		[]road{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}, {3, 0, 3}, {1, 0, 1}},
		[]int64{0, 2, 9, 4}, []int64{0, 1, 3, 1}, 15,
	)
	e := newEngine(t, in)
	e.Run()
	first, err := e.Select()
	require.NoError(t, err)
	stats := e.Stats()

	e.Run()
	second, err := e.Select()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, stats, e.Stats())
}

func TestEngine_OnRelaxStrictlyImproves(t *testing.T) {
	in := mustInstance(t, 4,
		[]road{{0, 1, 5}, {0, 2, 1}, {2, 1, 1}, {1, 3, 1}, {3, 0, 1}, {2, 0, 1}},
		[]int64{0, 3, 2, 1}, []int64{0, 1, 1, 1}, 20,
	)

	var events []planner.RelaxEvent
	e := newEngine(t, in, planner.WithOnRelax(func(ev planner.RelaxEvent) {
		events = append(events, ev)
	}))
	e.Run()

	require.NotEmpty(t, events)
	require.Equal(t, uint64(len(events)), e.Stats().Relaxations)
	for _, ev := range events {
		assert.Less(t, ev.New, ev.Old)
		assert.LessOrEqual(t, ev.New, in.Budget)
	}

	// The table already routes 0→1 through 2.
	var onOne []int64
	for _, ev := range events {
		if ev.Mask == 0 && ev.Location == 1 {
			onOne = append(onOne, ev.New)
		}
	}
	require.Equal(t, int64(2), onOne[len(onOne)-1])
	require.Equal(t, int64(2), e.Elapsed(0, 1))
}
