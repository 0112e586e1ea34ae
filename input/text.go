// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
)

// tokens reads whitespace-separated integers and remembers how many it has
// consumed, for error messages.
type tokens struct {
	sc   *bufio.Scanner
	read int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// nextInt64 returns the next token as an integer; what names it in errors.
func (tk *tokens) nextInt64(what string) (int64, error) {
	if !tk.sc.Scan() {
		if err := tk.sc.Err(); err != nil {
			return 0, fmt.Errorf("input: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input, want %s", ErrSyntax, what)
	}
	tk.read++
	v, err := strconv.ParseInt(tk.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s) %q", ErrSyntax, tk.read, what, tk.sc.Text())
	}

	return v, nil
}

func (tk *tokens) nextInt(what string) (int, error) {
	v, err := tk.nextInt64(what)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt || v > math.MaxInt {
		return 0, fmt.Errorf("%w: token %d (%s) %d overflows int", ErrSyntax, tk.read, what, v)
	}

	return int(v), nil
}

// ParseText decodes one instance in the text format.
func ParseText(r io.Reader) (*planner.Instance, error) {
	tk := newTokens(r)

	n, err := tk.nextInt("N")
	if err != nil {
		return nil, err
	}
	m, err := tk.nextInt("M")
	if err != nil {
		return nil, err
	}
	budget, err := tk.nextInt64("T")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > planner.HardMaxLocations || m < 0 {
		return nil, fmt.Errorf("%w: N=%d (max %d) M=%d", ErrShape, n, planner.HardMaxLocations, m)
	}

	g, err := core.NewGraph(n, core.WithMultiEdges(), core.WithLoops())
	if err != nil {
		return nil, err
	}
	in := &planner.Instance{
		Graph:     g,
		Scores:    make([]int64, n),
		Durations: make([]int64, n),
		Budget:    budget,
	}

	var i int
	for i = 0; i < n; i++ {
		if in.Scores[i], err = tk.nextInt64(fmt.Sprintf("score %d", i)); err != nil {
			return nil, err
		}
	}
	for i = 0; i < n; i++ {
		if in.Durations[i], err = tk.nextInt64(fmt.Sprintf("duration %d", i)); err != nil {
			return nil, err
		}
	}

	var a, b int
	var w int64
	for i = 0; i < m; i++ {
		if a, err = tk.nextInt(fmt.Sprintf("road %d from", i)); err != nil {
			return nil, err
		}
		if b, err = tk.nextInt(fmt.Sprintf("road %d to", i)); err != nil {
			return nil, err
		}
		if w, err = tk.nextInt64(fmt.Sprintf("road %d time", i)); err != nil {
			return nil, err
		}
		if err = g.AddEdge(a, b, w); err != nil {
			return nil, fmt.Errorf("input: road %d (%d %d %d): %w", i, a, b, w, err)
		}
	}

	k, err := tk.nextInt("K")
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: K=%d", ErrShape, k)
	}
	var x, y int
	for i = 0; i < k; i++ {
		if x, err = tk.nextInt(fmt.Sprintf("prerequisite %d task", i)); err != nil {
			return nil, err
		}
		if y, err = tk.nextInt(fmt.Sprintf("prerequisite %d dependency", i)); err != nil {
			return nil, err
		}
		if x < 0 || x >= n || y < 0 || y >= n {
			return nil, fmt.Errorf("input: prerequisite %d (%d %d): %w", i, x, y, prereq.ErrTaskOutOfRange)
		}
		in.Prerequisites = append(in.Prerequisites, prereq.Relation{Task: x, Dependency: y})
	}

	if tk.sc.Scan() {
		return nil, fmt.Errorf("%w: %q after %d tokens", ErrTrailingData, tk.sc.Text(), tk.read)
	}
	if err = tk.sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return in, nil
}

// WriteText encodes in in the text format, one record per line.
// Roads are written in Graph.Edges order.
func WriteText(w io.Writer, in *planner.Instance) error {
	if in == nil || in.Graph == nil {
		return ErrNilInstance
	}
	n := in.Graph.Order()
	if len(in.Scores) != n || len(in.Durations) != n {
		return fmt.Errorf("%w: N=%d scores=%d durations=%d", ErrShape, n, len(in.Scores), len(in.Durations))
	}

	bw := bufio.NewWriter(w)
	edges := in.Graph.Edges()
	fmt.Fprintf(bw, "%d %d %d\n", n, len(edges), in.Budget)
	writeRow(bw, in.Scores)
	writeRow(bw, in.Durations)
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintf(bw, "%d\n", len(in.Prerequisites))
	for _, r := range in.Prerequisites {
		fmt.Fprintf(bw, "%d %d\n", r.Task, r.Dependency)
	}

	return bw.Flush()
}

func writeRow(w *bufio.Writer, row []int64) {
	for i, v := range row {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.FormatInt(v, 10))
	}
	w.WriteByte('\n')
}
