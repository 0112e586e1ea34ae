// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; call sites wrap with
// fmt.Errorf("op: %w", ErrX) and callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to AllPairs.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadShape is returned when a table of order < 1 is requested.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilTable indicates that a nil *Table was used.
	ErrNilTable = errors.New("matrix: nil table")

	// ErrNonZeroDiagonal signals a diagonal entry that is not 0 before Floyd–Warshall.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeDistance signals a negative entry; the closure requires non-negative input.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNoRoutes is returned by Route on a table built without WithRoutes.
	ErrNoRoutes = errors.New("matrix: table was built without routes")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("matrix: unknown all-pairs algorithm")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
