// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewLocations indicates NewGraph was asked for fewer than one location.
	ErrTooFewLocations = errors.New("core: graph needs at least one location")

	// ErrLocationOutOfRange indicates an index outside [0, Order()).
	ErrLocationOutOfRange = errors.New("core: location index out of range")

	// ErrNegativeWeight indicates a negative travel time.
	ErrNegativeWeight = errors.New("core: negative travel time")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a one-way road From→To that takes Weight time units to travel.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a location to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed, non-negatively weighted graph over a fixed set of
// locations. Locations are never added or removed after construction.
type Graph struct {
	mu sync.RWMutex // guards edges and adjacency

	allowMulti bool
	allowLoops bool

	n     int
	edges []Edge

	// adjacency[from] holds indexes into edges, in insertion order.
	adjacency [][]int
}

// NewGraph creates a graph with n locations and no edges.
// By default, Graph rejects self-loops and parallel edges.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrTooFewLocations)
	}
	g := &Graph{
		n:         n,
		adjacency: make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
