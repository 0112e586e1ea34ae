// Package dijkstra_test validates the shortest-path engine: input
// validation, distances on small graphs, predecessor vectors, thresholds
// and parallel edges.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/dijkstra"
)

func mustGraph(t *testing.T, n int, edges [][3]int64, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range edges {
		if err = g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := mustGraph(t, 2, nil)
	_, _, err := dijkstra.Dijkstra(g)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, nil)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(5))
	if !errors.Is(err, dijkstra.ErrSourceOutOfRange) {
		t.Fatalf("Expected ErrSourceOutOfRange, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"max distance":  func() { dijkstra.WithMaxDistance(-1) },
		"inf threshold": func() { dijkstra.WithInfEdgeThreshold(0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_Directed(t *testing.T) {
	// 0→1 (2), 0→2 (1), 2→1 (1), 1→3 (3), 2→3 (5); nothing leaves 3.
	g := mustGraph(t, 4, [][3]int64{{0, 1, 2}, {0, 2, 1}, {2, 1, 1}, {1, 3, 3}, {2, 3, 5}})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{0, 2, 1, 5}
	for v, w := range want {
		if dist[v] != w {
			t.Errorf("dist[%d] = %d; want %d", v, dist[v], w)
		}
	}
	// tie at location 1 (0→1 = 0→2→1 = 2): the first relaxation wins
	if prev[1] != 0 {
		t.Errorf("prev[1] = %d; want 0", prev[1])
	}
	if prev[3] != 1 {
		t.Errorf("prev[3] = %d; want 1", prev[3])
	}

	// edges are one-way: 3 reaches nobody
	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(3))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor vector without WithReturnPath")
	}
	for v := 0; v < 3; v++ {
		if dist[v] != dijkstra.Inf {
			t.Errorf("dist[%d] = %d; want Inf", v, dist[v])
		}
	}
	if dist[3] != 0 {
		t.Errorf("dist[3] = %d; want 0", dist[3])
	}
}

func TestDijkstra_ParallelEdgesKeepMinimum(t *testing.T) {
	g := mustGraph(t, 2, [][3]int64{{0, 1, 9}, {0, 1, 4}, {0, 1, 6}}, core.WithMultiEdges())
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 4 {
		t.Fatalf("dist[1] = %d; want 4", dist[1])
	}
}

func TestDijkstra_ZeroWeightsAndLoops(t *testing.T) {
	g := mustGraph(t, 3, [][3]int64{{0, 0, 0}, {0, 1, 0}, {1, 2, 0}}, core.WithLoops())
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}
	for v, d := range dist {
		if d != 0 {
			t.Errorf("dist[%d] = %d; want 0", v, d)
		}
	}
}

func TestDijkstra_Thresholds(t *testing.T) {
	// 0→1 (1), 1→2 (10), 0→2 (100)
	g := mustGraph(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 10}, {0, 2, 100}})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(10))
	if err != nil {
		t.Fatal(err)
	}
	if dist[2] != dijkstra.Inf {
		t.Errorf("closed roads: dist[2] = %d; want Inf", dist[2])
	}

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(5))
	if err != nil {
		t.Fatal(err)
	}
	if dist[1] != 1 || dist[2] != dijkstra.Inf {
		t.Errorf("max distance: dist = %v", dist)
	}
}

func TestRoute(t *testing.T) {
	g := mustGraph(t, 5, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {0, 3, 10}})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		to   int
		want []int
	}{
		{0, []int{0}},
		{3, []int{0, 1, 2, 3}},
		{4, nil},
	}
	for _, tc := range cases {
		got := dijkstra.Route(prev, 0, tc.to)
		if len(got) != len(tc.want) {
			t.Fatalf("Route(0,%d) = %v; want %v", tc.to, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Route(0,%d) = %v; want %v", tc.to, got, tc.want)
			}
		}
	}
}
