// SPDX-License-Identifier: MIT
// Package: dayplan/builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewLocations indicates n < 1.
var ErrTooFewLocations = errors.New("builder: need at least one location")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRange indicates a negative upper bound for scores, durations or the budget.
var ErrInvalidRange = errors.New("builder: invalid value range")

// builderErrorf prefixes err with the method name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
