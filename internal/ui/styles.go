// package ui styles the status lines the admin commands print.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is a small stylesheet built with named [lipgloss.Style] fields,
// matching the markers the commands emit: ✓ for created records, • for
// already-existing ones, ✅ for run summaries.
type Styles struct {
	heading lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		heading: bold("#7D56F4"),
		success: bold("#04B575"),
		warn:    fg("#FFA500"),
	}
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func bold(c string) lipgloss.Style {
	return fg(c).Bold(true)
}

func (s *Styles) Heading(text string) string { return s.heading.Render(text) }
func (s *Styles) Success(text string) string { return s.success.Render(text) }
func (s *Styles) Warn(text string) string    { return s.warn.Render(text) }
