package planner

import "fmt"

// Reconstruct walks parent records from sel back to the initial state and
// returns the actions in forward order. A return trip home is appended
// when sel does not end at home.
//
// Every parent record points to a state that was final before its child was
// last improved, and improvements are strict, so the chain cannot loop; the
// walk still stops after one step per state as a guard.
func (e *Engine) Reconstruct(sel Selection) ([]Action, error) {
	if !e.ran {
		return nil, ErrEngineNotRun
	}
	if !e.inRange(sel.Mask, sel.Location) || e.Elapsed(sel.Mask, sel.Location) == Inf {
		return nil, fmt.Errorf("%w: mask=%b loc=%d", ErrStateOutOfRange, sel.Mask, sel.Location)
	}

	var (
		rev   []Action
		mask  = sel.Mask
		loc   = sel.Location
		limit = e.stats.States
		steps uint64
	)
	for {
		p, ok := e.Parent(mask, loc)
		if !ok {
			break
		}
		if steps++; steps > limit {
			return nil, fmt.Errorf("%w: cycle after %d steps", ErrBrokenChain, steps)
		}

		a := Action{
			Kind:  p.Kind,
			From:  p.Location,
			To:    loc,
			Start: e.Elapsed(p.Mask, p.Location),
			End:   e.Elapsed(mask, loc),
			Mask:  mask,
		}
		if a.Kind == Move {
			if err := e.attachRoute(&a); err != nil {
				return nil, err
			}
		}
		rev = append(rev, a)
		mask, loc = p.Mask, p.Location
	}
	if mask != 0 || loc != Home {
		return nil, fmt.Errorf("%w: stopped at mask=%b loc=%d", ErrBrokenChain, mask, loc)
	}

	actions := make([]Action, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		actions = append(actions, rev[i])
	}

	if sel.Location != Home {
		back := Action{
			Kind:   Move,
			From:   sel.Location,
			To:     Home,
			Start:  sel.Elapsed,
			End:    sel.Total(),
			Mask:   sel.Mask,
			Return: true,
		}
		if err := e.attachRoute(&back); err != nil {
			return nil, err
		}
		actions = append(actions, back)
	}

	return actions, nil
}

// attachRoute fills a.Via when routes were requested.
func (e *Engine) attachRoute(a *Action) error {
	if !e.opts.Routes {
		return nil
	}
	via, err := e.table.Route(a.From, a.To)
	if err != nil {
		return fmt.Errorf("planner: route %d→%d: %w", a.From, a.To, err)
	}
	a.Via = via

	return nil
}
