package report

import "github.com/charmbracelet/lipgloss"

// styles is the palette of one rendering.
type styles struct {
	title   lipgloss.Style
	work    lipgloss.Style
	move    lipgloss.Style
	ret     lipgloss.Style
	total   lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	enabled bool
}

func newStyles(r *lipgloss.Renderer, enabled bool) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),

		work: r.NewStyle().
			Foreground(lipgloss.Color("green")).
			Bold(true),

		move: r.NewStyle().
			Foreground(lipgloss.Color("245")),

		ret: r.NewStyle().
			Foreground(lipgloss.Color("yellow")),

		total: r.NewStyle().
			Bold(true),

		warn: r.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true),

		muted: r.NewStyle().
			Foreground(lipgloss.Color("241")),

		enabled: enabled,
	}
}

// render applies st unless styling is off.
func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return st.Render(text)
}
