package planner

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/prereq"
)

// parentRecord is the compact form of a parent pointer. The predecessor
// mask is implied by the kind: a move keeps the mask, work clears the bit
// of the location it happened at.
type parentRecord struct {
	kind ActionKind
	from uint8
}

// ParentRecord is the best-known way a DP state was reached.
type ParentRecord struct {
	Mask     uint64 // predecessor mask
	Location int    // predecessor location
	Kind     ActionKind
}

// Engine owns the DP and parent tables of one instance.
type Engine struct {
	n      int
	states uint64 // 1 << n
	budget int64

	dist      [][]int64 // private copy of the distance table
	durations []int64
	checker   *prereq.Checker
	table     *matrix.Table
	opts      Options

	elapsed []int64        // index mask*n + loc
	parent  []parentRecord // same index
	score   []int64        // per mask, running sum of task scores

	stats Stats
	ran   bool
}

// NewEngine prepares an engine over a precomputed distance table and
// prerequisite checker. Both must have the instance's order.
// A table built with matrix.WithRoutes turns on WithRoutes for the engine.
func NewEngine(in *Instance, table *matrix.Table, checker *prereq.Checker, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, err := validateInstance(in, cfg.MaxLocations)
	if err != nil {
		return nil, err
	}
	if table == nil || table.Order() != n {
		return nil, fmt.Errorf("%w: table", ErrTableMismatch)
	}
	if checker == nil || checker.Order() != n {
		return nil, fmt.Errorf("%w: checker", ErrTableMismatch)
	}
	if table.HasRoutes() {
		cfg.Routes = true
	}

	e := &Engine{
		n:         n,
		states:    uint64(1) << uint(n),
		budget:    in.Budget,
		dist:      table.Rows(),
		durations: append([]int64(nil), in.Durations...),
		checker:   checker,
		table:     table,
		opts:      cfg,
	}

	e.score = make([]int64, e.states)
	for mask := uint64(1); mask < e.states; mask++ {
		low := bits.TrailingZeros64(mask)
		e.score[mask] = e.score[mask&(mask-1)] + in.Scores[low]
	}

	return e, nil
}

// Order returns N.
func (e *Engine) Order() int {
	return e.n
}

// Run performs the forward pass over every (mask, location) state.
// Running again recomputes the tables from scratch.
func (e *Engine) Run() {
	size := e.states * uint64(e.n)
	e.elapsed = make([]int64, size)
	e.parent = make([]parentRecord, size)
	for i := range e.elapsed {
		e.elapsed[i] = Inf
	}
	e.stats = Stats{Locations: e.n, States: size}

	// initial state: at home, nothing done
	e.elapsed[Home] = 0

	for mask := uint64(0); mask < e.states; mask++ {
		e.settleMoves(mask)
		e.expandWork(mask)
	}

	for _, t := range e.elapsed {
		if t != Inf {
			e.stats.Reached++
		}
	}
	e.ran = true
}

// settleMoves relaxes move transitions inside mask until no state improves.
// A shortest chain of moves touches each location at most once, so n rounds
// always suffice; the loop usually stops after the second.
func (e *Engine) settleMoves(mask uint64) {
	base := mask * uint64(e.n)
	row := e.elapsed[base : base+uint64(e.n)]

	var (
		cur, next int
		t, d      int64
		changed   = true
	)
	for round := 0; changed && round < e.n; round++ {
		changed = false
		e.stats.MoveRounds++
		for cur = 0; cur < e.n; cur++ {
			t = row[cur]
			if t == Inf {
				continue
			}
			for next = 0; next < e.n; next++ {
				if next == cur {
					continue
				}
				d = e.dist[cur][next]
				if d == Inf {
					continue
				}
				if e.relax(mask, next, t, d, Move, cur) {
					changed = true
				}
			}
		}
	}
}

// expandWork applies the work transition from every reached location of mask.
func (e *Engine) expandWork(mask uint64) {
	base := mask * uint64(e.n)

	var (
		cur int
		bit uint64
		t   int64
	)
	for cur = 0; cur < e.n; cur++ {
		t = e.elapsed[base+uint64(cur)]
		if t == Inf {
			continue
		}
		bit = uint64(1) << uint(cur)
		if mask&bit != 0 || !e.checker.CanPerform(mask, cur) {
			continue
		}
		e.relax(mask|bit, cur, t, e.durations[cur], Work, cur)
	}
}

// relax offers state (mask, loc) the candidate time t+cost. It is accepted
// iff it stays within budget and strictly beats the stored time.
func (e *Engine) relax(mask uint64, loc int, t, cost int64, kind ActionKind, from int) bool {
	if cost > e.budget-t {
		return false // over budget; also guards the addition
	}
	cand := t + cost
	idx := mask*uint64(e.n) + uint64(loc)
	old := e.elapsed[idx]
	if cand >= old {
		return false
	}

	e.elapsed[idx] = cand
	e.parent[idx] = parentRecord{kind: kind, from: uint8(from)}
	e.stats.Relaxations++
	if e.opts.OnRelax != nil {
		e.opts.OnRelax(RelaxEvent{Mask: mask, Location: loc, Old: old, New: cand, Kind: kind, From: from})
	}

	return true
}

// Elapsed returns the minimum time of state (mask, loc), Inf when the state
// is unreachable within budget or out of range.
func (e *Engine) Elapsed(mask uint64, loc int) int64 {
	if !e.ran || !e.inRange(mask, loc) {
		return Inf
	}

	return e.elapsed[mask*uint64(e.n)+uint64(loc)]
}

// Parent returns the parent record of (mask, loc). ok is false for the
// initial state, unreachable states and out-of-range input.
func (e *Engine) Parent(mask uint64, loc int) (ParentRecord, bool) {
	if !e.ran || !e.inRange(mask, loc) {
		return ParentRecord{}, false
	}
	p := e.parent[mask*uint64(e.n)+uint64(loc)]
	switch p.kind {
	case Work:
		return ParentRecord{Mask: mask &^ (uint64(1) << uint(loc)), Location: loc, Kind: Work}, true
	case Move:
		return ParentRecord{Mask: mask, Location: int(p.from), Kind: Move}, true
	default:
		return ParentRecord{}, false
	}
}

// Score returns the total value of the tasks in mask.
func (e *Engine) Score(mask uint64) int64 {
	if mask >= e.states {
		return 0
	}

	return e.score[mask]
}

// Stats returns counters of the last Run.
func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) inRange(mask uint64, loc int) bool {
	return mask < e.states && loc >= 0 && loc < e.n
}
