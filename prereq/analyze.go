package prereq

import (
	"github.com/gammazero/toposort"
	"github.com/yourbasic/bit"
)

// Report summarizes which tasks can ever be part of a plan.
type Report struct {
	// Order is a topological order of all tasks (dependencies first), or nil
	// when the relation has a cycle.
	Order []int

	// Cyclic is true when the prerequisite relation contains a cycle,
	// self-dependencies included.
	Cyclic bool

	// Unreachable holds locations that cannot be visited on a round trip
	// from home.
	Unreachable *bit.Set

	// Blocked holds tasks that can never be performed: unreachable, on a
	// cycle, or depending (transitively) on such a task.
	Blocked *bit.Set

	// Performable is the complement of Blocked.
	Performable *bit.Set
}

// Analyze classifies every task of c. reachable(t) must report whether the
// location of task t can be reached from home and home reached back from
// it; pass nil to treat every location as reachable.
//
// A task is performable iff it is reachable and all its dependencies are
// performable (least fixed point), so cycles fall out as blocked without
// being searched for.
// Complexity: O(n²) for the fixed point plus O(n + relations) for the sort.
func Analyze(c *Checker, reachable func(task int) bool) (*Report, error) {
	if c == nil {
		return nil, ErrNilChecker
	}
	if reachable == nil {
		reachable = func(int) bool { return true }
	}

	rep := &Report{
		Unreachable: new(bit.Set),
		Blocked:     new(bit.Set),
		Performable: new(bit.Set),
	}

	var edges []toposort.Edge
	for t := 0; t < c.n; t++ {
		if !reachable(t) {
			rep.Unreachable.Add(t)
		}
		deps := c.Requires(t)
		if len(deps) == 0 {
			// keep isolated tasks in the sorted output
			edges = append(edges, toposort.Edge{nil, t})
			continue
		}
		for _, d := range deps {
			edges = append(edges, toposort.Edge{d, t})
		}
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		rep.Cyclic = true
	} else {
		rep.Order = make([]int, 0, c.n)
		for _, v := range sorted {
			if v != nil {
				rep.Order = append(rep.Order, v.(int))
			}
		}
	}

	var done uint64
	for changed := true; changed; {
		changed = false
		for t := 0; t < c.n; t++ {
			if done&(1<<uint(t)) != 0 || rep.Unreachable.Contains(t) {
				continue
			}
			if c.required[t]&^done == 0 {
				done |= 1 << uint(t)
				changed = true
			}
		}
	}
	for t := 0; t < c.n; t++ {
		if done&(1<<uint(t)) != 0 {
			rep.Performable.Add(t)
		} else {
			rep.Blocked.Add(t)
		}
	}

	return rep, nil
}
