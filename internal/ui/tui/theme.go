package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Ruled    lipgloss.Style
	Unruled  lipgloss.Style
	Invalid  lipgloss.Style
	Selected lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Ruled:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Unruled:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
}
