package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06BCC1"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
