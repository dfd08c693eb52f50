package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the menu shell.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD77C"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)
