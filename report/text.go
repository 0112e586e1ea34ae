package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dayplan/planner"
)

// ErrNilPlan is returned when there is nothing to render.
var ErrNilPlan = errors.New("report: plan is nil")

// Text writes the human-readable form of p:
//
//	best score, then the route from home, then the completed tasks with
//	their score and duration, then total score and total time.
//
// An empty plan prints the score line and a notice instead. in may be nil;
// it is only used to size the header.
func Text(w io.Writer, in *planner.Instance, p *planner.Plan, opts ...Option) error {
	if p == nil {
		return ErrNilPlan
	}
	o := newOptions(w, opts...)
	st := newStyles(o.renderer, !o.plain)
	bw := bufio.NewWriter(w)

	header := "Plan"
	if in != nil && in.Graph != nil {
		header = fmt.Sprintf("Plan over %d locations, budget %d", in.Order(), p.Budget)
	}
	fmt.Fprintln(bw, st.render(st.title, header))
	fmt.Fprintf(bw, "best score: %s\n", st.render(st.total, fmt.Sprint(p.Score)))

	if p.Empty() {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, st.render(st.warn, "no task can be completed within the time budget"))
		writeStats(bw, st, p, o.stats)
		return bw.Flush()
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, st.render(st.title, "Route"))
	fmt.Fprintf(bw, "  start at location %d\n", planner.Home)
	for _, a := range p.Actions {
		fmt.Fprintf(bw, "  %s\n", actionLine(st, a))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, st.render(st.title, "Completed tasks"))
	for _, c := range p.Completed {
		fmt.Fprintf(bw, "  task %d: score %d, duration %d\n", c.Location, c.Score, c.Duration)
	}

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "total score: %s\n", st.render(st.total, fmt.Sprint(p.Score)))
	fmt.Fprintf(bw, "total time:  %s\n", st.render(st.total, fmt.Sprintf("%d / %d", p.TotalTime, p.Budget)))
	writeStats(bw, st, p, o.stats)

	return bw.Flush()
}

func actionLine(st styles, a planner.Action) string {
	span := fmt.Sprintf("[%d→%d]", a.Start, a.End)
	switch {
	case a.Kind == planner.Work:
		return fmt.Sprintf("%s %s at location %d", span, st.render(st.work, "work"), a.To)
	case a.Return:
		return fmt.Sprintf("%s %s %d → %d%s", span, st.render(st.ret, "return"), a.From, a.To, via(a))
	default:
		return fmt.Sprintf("%s %s %d → %d%s", span, st.render(st.move, "move"), a.From, a.To, via(a))
	}
}

func via(a planner.Action) string {
	if len(a.Via) <= 2 {
		return ""
	}
	parts := make([]string, len(a.Via))
	for i, v := range a.Via {
		parts[i] = fmt.Sprint(v)
	}

	return " via " + strings.Join(parts, " → ")
}

func writeStats(w io.Writer, st styles, p *planner.Plan, on bool) {
	if !on {
		return
	}
	s := p.Stats
	line := fmt.Sprintf("states %d, reached %d, relaxations %d, move rounds %d",
		s.States, s.Reached, s.Relaxations, s.MoveRounds)
	fmt.Fprintln(w, st.render(st.muted, line))
}
