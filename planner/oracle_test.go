package planner_test

import (
	"testing"

	"github.com/katalvlaran/dayplan/builder"
	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
	"github.com/stretchr/testify/require"
)

// bruteForce enumerates every ordering of every feasible task sequence and
// returns the best (score, total time) pair.
func bruteForce(t *testing.T, in *planner.Instance) (int64, int64) {
	t.Helper()
	n := in.Order()

	// plain Floyd–Warshall over the raw edges, independent of package matrix
	d := make([][]int64, n)
	for i := range d {
		d[i] = make([]int64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = planner.Inf
			}
		}
	}
	for _, e := range in.Graph.Edges() {
		if e.Weight < d[e.From][e.To] {
			d[e.From][e.To] = e.Weight
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k] != planner.Inf && d[k][j] != planner.Inf && d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	checker, err := prereq.New(n, in.Prerequisites)
	require.NoError(t, err)

	var (
		bestScore int64
		bestTime  int64
		walk      func(mask uint64, loc int, now, score int64)
	)
	walk = func(mask uint64, loc int, now, score int64) {
		if back := d[loc][planner.Home]; back != planner.Inf && now+back <= in.Budget {
			total := now + back
			if score > bestScore || (score == bestScore && total < bestTime) {
				bestScore, bestTime = score, total
			}
		}
		for next := 0; next < n; next++ {
			bit := uint64(1) << uint(next)
			if mask&bit != 0 || !checker.CanPerform(mask, next) || d[loc][next] == planner.Inf {
				continue
			}
			end := now + d[loc][next] + in.Durations[next]
			if end > in.Budget {
				continue
			}
			walk(mask|bit, next, end, score+in.Scores[next])
		}
	}
	walk(0, planner.Home, 0, 0)

	return bestScore, bestTime
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 2 + int(seed%6) // 2..7 locations
		in, err := builder.RandomInstance(n,
			builder.WithSeed(seed),
			builder.WithEdgeProbability(0.45),
			builder.WithPrereqProbability(0.25),
			builder.WithMaxDuration(6),
		)
		require.NoError(t, err)

		wantScore, wantTime := bruteForce(t, in)

		for _, alg := range []matrix.Algorithm{matrix.Dijkstra, matrix.FloydWarshall} {
			p, err := planner.Solve(in, planner.WithAPSP(alg), planner.WithRoutes())
			require.NoError(t, err, "seed %d", seed)
			require.Equal(t, wantScore, p.Score, "seed %d alg %s", seed, alg)
			if wantScore > 0 {
				require.Equal(t, wantTime, p.TotalTime, "seed %d alg %s", seed, alg)
			}
			checkPlan(t, in, p)
		}
	}
}

func TestSolve_CyclicRandomInstances(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		in, err := builder.RandomInstance(6,
			builder.WithSeed(seed),
			builder.WithCyclicPrereqs(),
			builder.WithPrereqProbability(0.3),
			builder.WithParallelRoads(),
		)
		require.NoError(t, err)

		wantScore, _ := bruteForce(t, in)
		p, err := planner.Solve(in)
		require.NoError(t, err)
		require.Equal(t, wantScore, p.Score, "seed %d", seed)
		checkPlan(t, in, p)
	}
}
