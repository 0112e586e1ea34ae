package planner

// Selection is the optimal final state chosen by Select.
type Selection struct {
	Mask       uint64
	Location   int
	Score      int64
	Elapsed    int64 // time to reach the state
	ReturnTime int64 // time from Location back home; 0 at home
}

// Total is the plan time including the trip home.
func (s Selection) Total() int64 {
	return s.Elapsed + s.ReturnTime
}

// Select scans every reached state that can still get home within budget
// and returns the one with maximum score. Among equal scores the smaller
// total time wins, then the first state in (mask, location) order.
//
// The initial state is always a candidate, so a run where nothing fits
// selects (0, Home) with score 0.
func (e *Engine) Select() (Selection, error) {
	if !e.ran {
		return Selection{}, ErrEngineNotRun
	}

	best := Selection{Mask: 0, Location: Home}

	var (
		mask    uint64
		loc     int
		t, ret  int64
		s       int64
		idx     uint64
		toHome  = make([]int64, e.n)
		current Selection
	)
	for loc = 0; loc < e.n; loc++ {
		toHome[loc] = e.dist[loc][Home]
	}
	toHome[Home] = 0

	for mask = 0; mask < e.states; mask++ {
		s = e.score[mask]
		if s < best.Score {
			continue
		}
		idx = mask * uint64(e.n)
		for loc = 0; loc < e.n; loc++ {
			t = e.elapsed[idx+uint64(loc)]
			if t == Inf {
				continue
			}
			ret = toHome[loc]
			if ret == Inf || ret > e.budget-t {
				continue
			}
			current = Selection{Mask: mask, Location: loc, Score: s, Elapsed: t, ReturnTime: ret}
			if s > best.Score || current.Total() < best.Total() {
				best = current
			}
		}
	}

	return best, nil
}
