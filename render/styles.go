package render

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorTitle   = lipgloss.Color("#2196F3")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#6b7785")
)

// Styles groups the lipgloss styles used by text output.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Cell    lipgloss.Style
	Header  lipgloss.Style
}

// newStyles returns coloured styles, or plain ones when color is false.
func newStyles(color bool) Styles {
	plain := lipgloss.NewStyle()
	s := Styles{
		Title:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Muted:   plain,
		Cell:    plain.Padding(0, 1).Align(lipgloss.Right),
		Header:  plain.Padding(0, 1).Align(lipgloss.Right),
	}
	if !color {
		return s
	}

	s.Title = plain.Bold(true).Foreground(colorTitle)
	s.Success = plain.Bold(true).Foreground(colorSuccess)
	s.Warning = plain.Foreground(colorWarning)
	s.Error = plain.Bold(true).Foreground(colorError)
	s.Muted = plain.Foreground(colorMuted)
	s.Header = s.Header.Bold(true)

	return s
}
