package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Option customizes Text and Check.
type Option func(*options)

type options struct {
	renderer *lipgloss.Renderer
	plain    bool
	stats    bool
}

func newOptions(w io.Writer, opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = lipgloss.NewRenderer(w)
	}

	return o
}

// WithPlain turns styling off.
func WithPlain() Option {
	return func(o *options) { o.plain = true }
}

// WithRenderer uses r instead of a renderer detected from the writer.
// Panics on nil.
func WithRenderer(r *lipgloss.Renderer) Option {
	if r == nil {
		panic("report: WithRenderer(nil)")
	}
	return func(o *options) { o.renderer = r }
}

// WithStats appends the state-space counters of the run.
func WithStats() Option {
	return func(o *options) { o.stats = true }
}
