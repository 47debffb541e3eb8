package desk

import "github.com/charmbracelet/lipgloss"

// Style controls the desk's rendering.
type Style struct {
	Title  lipgloss.Style
	Paper  lipgloss.Style
	Status lipgloss.Style
	Gauge  lipgloss.Style
	Worn   lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Title:  lipgloss.NewStyle().Bold(true),
		Paper:  lipgloss.NewStyle(),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Gauge:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Worn:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
