// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: edge lifecycle and read-only queries.
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
// Concurrency:
//   - AddEdge under the write lock, every query under the read lock.

package core

import "fmt"

// Order returns the number of locations.
func (g *Graph) Order() int {
	return g.n
}

// HasLocation reports whether i is a valid location index.
func (g *Graph) HasLocation(i int) bool {
	return i >= 0 && i < g.n
}

// AllowsMultiEdges reports the construction-time multi-edge policy.
func (g *Graph) AllowsMultiEdges() bool {
	return g.allowMulti
}

// AllowsLoops reports the construction-time self-loop policy.
func (g *Graph) AllowsLoops() bool {
	return g.allowLoops
}

// AddEdge inserts the directed edge from→to with the given travel time.
//
// Steps:
//  1. Validate endpoints, weight and loop policy.
//  2. Under the write lock, enforce the multi-edge policy.
//  3. Append to the catalog and the adjacency of from.
//
// Complexity: O(1) amortized with multi-edges, O(deg(from)) without.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.HasLocation(from) || !g.HasLocation(to) {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", from, to, g.n, ErrLocationOutOfRange)
	}
	if weight < 0 {
		return fmt.Errorf("AddEdge(%d,%d): weight=%d: %w", from, to, weight, ErrNegativeWeight)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		for _, idx := range g.adjacency[from] {
			if g.edges[idx].To == to {
				return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
			}
		}
	}

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], len(g.edges)-1)

	return nil
}

// Neighbors returns a copy of the outgoing edges of u.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasLocation(u) {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", u, g.n, ErrLocationOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.adjacency[u]))
	for _, idx := range g.adjacency[u] {
		out = append(out, g.edges[idx])
	}

	return out, nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// MinWeight returns the smallest weight among the direct edges from→to.
// ok is false when there is no such edge or an index is out of range.
// Complexity: O(deg(from)).
func (g *Graph) MinWeight(from, to int) (w int64, ok bool) {
	if !g.HasLocation(from) || !g.HasLocation(to) {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var e Edge
	for _, idx := range g.adjacency[from] {
		e = g.edges[idx]
		if e.To != to {
			continue
		}
		if !ok || e.Weight < w {
			w, ok = e.Weight, true
		}
	}

	return w, ok
}
