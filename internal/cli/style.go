package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles is bound to one output so colors are dropped when it is not a
// terminal.
type styles struct {
	title  lipgloss.Style
	name   lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	box    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		name:   r.NewStyle().Bold(true),
		muted:  r.NewStyle().Faint(true),
		accent: r.NewStyle().Foreground(lipgloss.Color("35")),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
