// SPDX-License-Identifier: MIT
// Package: matrix
//
// allpairs.go — AllPairs: fill a Table from a location graph.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/dijkstra"
)

const opAllPairs = "AllPairs"

// AllPairs computes dist[i][j] for every ordered pair of locations of g.
//
// With the Dijkstra engine each source row is written by exactly one
// goroutine, so the fan-out shares nothing mutable but the Table rows it
// owns. The Floyd–Warshall engine seeds the table with the cheapest direct
// edge per pair and closes it in place.
//
// Complexity:
//   - Dijkstra:      O(N·(V+E) log V) time, O(N²) space.
//   - FloydWarshall: O(N³) time, O(N²) space.
func AllPairs(g *core.Graph, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, matrixErrorf(opAllPairs, ErrGraphNil)
	}

	t, err := NewTable(g.Order())
	if err != nil {
		return nil, matrixErrorf(opAllPairs, err)
	}
	if cfg.Routes {
		t.prev = make([][]int, t.n)
	}

	switch cfg.Algorithm {
	case Dijkstra:
		err = fillDijkstra(g, t, cfg)
	case FloydWarshall:
		err = fillFloydWarshall(g, t)
	default:
		err = fmt.Errorf("%d: %w", int(cfg.Algorithm), ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, matrixErrorf(opAllPairs, err)
	}

	return t, nil
}

// fillDijkstra writes row i from a Dijkstra run with Source(i).
func fillDijkstra(g *core.Graph, t *Table, cfg Options) error {
	var eg errgroup.Group
	eg.SetLimit(cfg.Parallelism)

	for src := 0; src < t.n; src++ {
		src := src
		eg.Go(func() error {
			dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
			if err != nil {
				return fmt.Errorf("source %d: %w", src, err)
			}
			copy(t.data[src*t.n:(src+1)*t.n], dist)
			if t.prev != nil {
				t.prev[src] = prev
			}

			return nil
		})
	}

	return eg.Wait()
}

// fillFloydWarshall seeds direct edges and runs the closure.
func fillFloydWarshall(g *core.Graph, t *Table) error {
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // the diagonal stays 0
		}
		if e.Weight < t.data[e.From*t.n+e.To] {
			t.data[e.From*t.n+e.To] = e.Weight
		}
	}
	if t.prev != nil {
		for i := 0; i < t.n; i++ {
			t.prev[i] = make([]int, t.n)
			for j := 0; j < t.n; j++ {
				t.prev[i][j] = -1
				if i != j && t.data[i*t.n+j] != Inf {
					t.prev[i][j] = i
				}
			}
		}
	}

	return FloydWarshallInPlace(t)
}
