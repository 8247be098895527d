package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds lipgloss styles for human-facing stderr output.
type styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Rule    lipgloss.Style
}

// newStyles binds styles to w so color is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title:   r.NewStyle().Foreground(lipgloss.Color("#E6EDF3")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#8B9AAE")),
		Accent:  r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#F85149")).Bold(true),
		Rule:    r.NewStyle().Foreground(lipgloss.Color("#223043")),
	}
}

func (s styles) printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", s.Error.Render("Error:"), err)
}
