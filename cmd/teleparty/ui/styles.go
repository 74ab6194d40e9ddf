// Package ui provides the lipgloss styling for the console report.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8BC34A") // lime green
	dim    = lipgloss.Color("244")
)

// Styles groups the styles used by the report renderer. Lipgloss downgrades
// them to plain text on non-color terminals, so piping the report to a file
// stays readable.
type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the report styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Bold:  lipgloss.NewStyle().Bold(true),
		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(dim),
	}
}
