package prereq

import (
	"fmt"
	"math/bits"
)

// Checker is an immutable prerequisite table over tasks 0..n-1.
type Checker struct {
	n        int
	required []uint64 // required[t] has bit d set iff requires(t, d)
}

// New builds a Checker for n tasks. Duplicate relations are harmless.
// Complexity: O(n + len(rel)).
func New(n int, rel []Relation) (*Checker, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooFewTasks)
	}
	if n > MaxTasks {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooManyTasks)
	}

	c := &Checker{n: n, required: make([]uint64, n)}
	for i, r := range rel {
		if r.Task < 0 || r.Task >= n || r.Dependency < 0 || r.Dependency >= n {
			return nil, fmt.Errorf("New: relation %d (%d requires %d) with n=%d: %w",
				i, r.Task, r.Dependency, n, ErrTaskOutOfRange)
		}
		c.required[r.Task] |= 1 << uint(r.Dependency)
	}

	return c, nil
}

// Order returns the number of tasks.
func (c *Checker) Order() int {
	return c.n
}

// CanPerform reports whether every dependency of task is set in mask.
// A task without prerequisites is always performable. Whether task itself
// is already in mask is not this function's concern.
func (c *Checker) CanPerform(mask uint64, task int) bool {
	return c.required[task]&^mask == 0
}

// RequiredMask returns the dependency bitmask of task.
func (c *Checker) RequiredMask(task int) uint64 {
	return c.required[task]
}

// Requires returns the dependencies of task in ascending order.
func (c *Checker) Requires(task int) []int {
	var deps []int
	for m := c.required[task]; m != 0; m &= m - 1 {
		deps = append(deps, bits.TrailingZeros64(m))
	}

	return deps
}

// Missing returns the dependencies of task that are not yet in mask.
func (c *Checker) Missing(mask uint64, task int) []int {
	var out []int
	for m := c.required[task] &^ mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}
