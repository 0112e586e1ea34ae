// SPDX-License-Identifier: MIT
// Package: matrix
//
// table.go — dense int64 distance table with bounds-checked accessors.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dayplan/dijkstra"
)

// Inf marks an unreachable pair. It equals dijkstra.Inf so rows produced by
// the shortest-path engine can be copied in verbatim.
const Inf = dijkstra.Inf

// Table is the dense all-pairs travel-time matrix.
type Table struct {
	n    int
	data []int64 // row-major, len n*n

	// prev[i] is the predecessor vector of source i; nil without routes.
	prev [][]int
}

// NewTable allocates an n×n table with 0 on the diagonal and Inf elsewhere.
// Complexity: O(n²).
func NewTable(n int) (*Table, error) {
	if n < 1 {
		return nil, matrixErrorf("NewTable", fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}
	t := &Table{n: n, data: make([]int64, n*n)}
	for i := range t.data {
		t.data[i] = Inf
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 0
	}

	return t, nil
}

// Order returns the number of locations N.
func (t *Table) Order() int {
	return t.n
}

// At returns the travel time i→j.
func (t *Table) At(i, j int) (int64, error) {
	if err := t.check(i, j); err != nil {
		return 0, matrixErrorf("At", err)
	}

	return t.data[i*t.n+j], nil
}

// Set overwrites the travel time i→j. Only table builders call it; a Table
// handed out by AllPairs is treated as read-only.
func (t *Table) Set(i, j int, v int64) error {
	if err := t.check(i, j); err != nil {
		return matrixErrorf("Set", err)
	}
	t.data[i*t.n+j] = v

	return nil
}

// Reachable reports whether j can be reached from i. Out-of-range pairs are
// unreachable.
func (t *Table) Reachable(i, j int) bool {
	if t.check(i, j) != nil {
		return false
	}

	return t.data[i*t.n+j] != Inf
}

// Rows returns a fresh [][]int64 copy of the table, for hot loops that
// cannot afford bounds-checked accessors.
// Complexity: O(n²) time and space.
func (t *Table) Rows() [][]int64 {
	out := make([][]int64, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = make([]int64, t.n)
		copy(out[i], t.data[i*t.n:(i+1)*t.n])
	}

	return out
}

// HasRoutes reports whether Route is available.
func (t *Table) HasRoutes() bool {
	return t.prev != nil
}

// Route returns the locations of one shortest route i→…→j, endpoints
// included. It returns (nil, nil) when j is unreachable from i.
func (t *Table) Route(i, j int) ([]int, error) {
	if err := t.check(i, j); err != nil {
		return nil, matrixErrorf("Route", err)
	}
	if t.prev == nil {
		return nil, matrixErrorf("Route", ErrNoRoutes)
	}

	return dijkstra.Route(t.prev[i], i, j), nil
}

func (t *Table) check(i, j int) error {
	if t == nil {
		return ErrNilTable
	}
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return fmt.Errorf("(%d,%d) with n=%d: %w", i, j, t.n, ErrOutOfRange)
	}

	return nil
}
