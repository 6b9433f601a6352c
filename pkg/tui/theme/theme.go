// Package theme centralizes Lip Gloss styles for the dayring TUI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the UI.
type Theme struct {
	Wheel   WheelTheme
	Readout ReadoutTheme
	Footer  FooterTheme
}

// WheelTheme styles the circular date selector.
type WheelTheme struct {
	Marker    lipgloss.Style
	Event     lipgloss.Style
	Today     lipgloss.Style
	Highlight lipgloss.Style
	Cursor    lipgloss.Style
	Center    lipgloss.Style
	CenterDim lipgloss.Style
}

// ReadoutTheme styles the selected-day panel.
type ReadoutTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Mood  lipgloss.Style
	Empty lipgloss.Style
}

// FooterTheme styles the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Wheel: WheelTheme{
			Marker:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Event:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
			Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Reverse(true).Bold(true),
			Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("219")),
			Center:    lipgloss.NewStyle().Bold(true),
			CenterDim: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Readout: ReadoutTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Mood:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
