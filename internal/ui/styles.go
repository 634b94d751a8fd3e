package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles the terminal reporter renders with.
type Styles struct {
	// Outcome styles
	Structured   lipgloss.Style
	Mixed        lipgloss.Style
	Unstructured lipgloss.Style
	Failure      lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Rule      lipgloss.Style
	Value     lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconResult  string
	IconFailure string
	IconRule    string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{}

	if enabled {
		s.Structured = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))  // Green
		s.Mixed = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))       // Yellow
		s.Unstructured = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Red
		s.Failure = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))      // Red

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))              // Cyan
		s.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))             // Blue

		s.IconResult = "▸"
		s.IconFailure = "✗"
		s.IconRule = "✓"
	} else {
		s.Structured = lipgloss.NewStyle()
		s.Mixed = lipgloss.NewStyle()
		s.Unstructured = lipgloss.NewStyle()
		s.Failure = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Rule = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()

		s.IconResult = ">"
		s.IconFailure = "ERROR:"
		s.IconRule = "*"
	}

	return s
}
