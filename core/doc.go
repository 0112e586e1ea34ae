// Package core provides the location graph consumed by every planning stage:
// N locations indexed 0..N-1 and directed edges carrying non-negative
// integer travel times.
//
// Location 0 is home by convention (see planner.Home); the graph itself does
// not treat it specially.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same ordered pair.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//	    Shortest-path relaxation keeps the minimum either way.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	NewGraph(n, opts...) (*Graph, error)        // O(n)
//	AddEdge(from, to int, weight int64) error   // O(1) amortized, O(deg) without multi-edges
//	Neighbors(u int) ([]Edge, error)            // O(deg(u)), insertion order
//	Edges() []Edge                              // O(E), insertion order
//	MinWeight(from, to int) (int64, bool)       // O(deg(from))
//
// Concurrency:
//
// A single sync.RWMutex guards the edge catalog and adjacency, so the
// all-pairs stage may run one Dijkstra per goroutine over the same Graph.
package core
