// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Inf means "no path"; the diagonal must be 0 and entries non-negative.

package matrix

import "fmt"

const opFloydWarshall = "FloydWarshall"

// FloydWarshallInPlace closes t under path concatenation: afterwards
// t.At(i,j) is the shortest travel time over any chain of entries.
// Predecessor vectors, when present, are kept consistent.
//
// Loop order is fixed (k → i → j) and only strict improvements are
// written, so equal inputs always produce equal tables.
// Time: O(n³); Extra space: O(1).
func FloydWarshallInPlace(t *Table) error {
	if t == nil {
		return matrixErrorf(opFloydWarshall, ErrNilTable)
	}
	n := t.n
	data := t.data

	for i := 0; i < n; i++ {
		if data[i*n+i] != 0 {
			return matrixErrorf(opFloydWarshall, fmt.Errorf("(%d,%d)=%d: %w", i, i, data[i*n+i], ErrNonZeroDiagonal))
		}
	}
	for i, v := range data {
		if v < 0 {
			return matrixErrorf(opFloydWarshall, fmt.Errorf("(%d,%d)=%d: %w", i/n, i%n, v, ErrNegativeDistance))
		}
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf || kj > Inf-1-ik {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					if t.prev != nil {
						t.prev[i][j] = t.prev[k][j]
					}
				}
			}
		}
	}

	return nil
}
