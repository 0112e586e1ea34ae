package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dayplan/prereq"
	"github.com/yourbasic/bit"
)

// ErrNilReport is returned by Check for a nil analysis.
var ErrNilReport = errors.New("report: prerequisite report is nil")

// Check writes the prerequisite analysis of n tasks.
func Check(w io.Writer, n int, rep *prereq.Report, opts ...Option) error {
	if rep == nil {
		return ErrNilReport
	}
	o := newOptions(w, opts...)
	st := newStyles(o.renderer, !o.plain)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, st.render(st.title, fmt.Sprintf("Prerequisites of %d tasks", n)))
	if rep.Cyclic {
		fmt.Fprintln(bw, st.render(st.warn, "cycle detected: tasks on it can never be completed"))
	} else {
		fmt.Fprintf(bw, "order:       %s\n", joinInts(rep.Order))
	}
	fmt.Fprintf(bw, "unreachable: %s\n", setLine(rep.Unreachable))
	fmt.Fprintf(bw, "blocked:     %s\n", setLine(rep.Blocked))
	fmt.Fprintf(bw, "performable: %s\n", setLine(rep.Performable))

	return bw.Flush()
}

func setLine(s *bit.Set) string {
	if s == nil || s.Empty() {
		return "-"
	}
	var out []int
	s.Visit(func(n int) bool {
		out = append(out, n)
		return false
	})

	return joinInts(out)
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, " ")
}
