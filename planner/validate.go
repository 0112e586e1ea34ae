// Package planner - input validation shared by Solve and NewEngine.
//
// Checks run in a fixed order and return the first violation as a wrapped
// sentinel, so error precedence is stable:
// nil instance → nil graph → size cap → vector lengths → negative values.
package planner

import "fmt"

// validateInstance verifies in and returns its order N.
// Complexity: O(N).
func validateInstance(in *Instance, maxLocations int) (int, error) {
	if in == nil {
		return 0, ErrNilInstance
	}
	if in.Graph == nil {
		return 0, ErrNilGraph
	}

	n := in.Graph.Order()
	if n > maxLocations {
		return 0, fmt.Errorf("%w: n=%d max=%d", ErrTooManyLocations, n, maxLocations)
	}
	if len(in.Scores) != n {
		return 0, fmt.Errorf("%w: len(scores)=%d n=%d", ErrDimensionMismatch, len(in.Scores), n)
	}
	if len(in.Durations) != n {
		return 0, fmt.Errorf("%w: len(durations)=%d n=%d", ErrDimensionMismatch, len(in.Durations), n)
	}
	if in.Budget < 0 {
		return 0, fmt.Errorf("%w: budget=%d", ErrNegativeValue, in.Budget)
	}

	var i int
	for i = 0; i < n; i++ {
		if in.Scores[i] < 0 {
			return 0, fmt.Errorf("%w: score[%d]=%d", ErrNegativeValue, i, in.Scores[i])
		}
		if in.Durations[i] < 0 {
			return 0, fmt.Errorf("%w: duration[%d]=%d", ErrNegativeValue, i, in.Durations[i])
		}
	}

	return n, nil
}
