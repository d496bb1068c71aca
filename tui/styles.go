package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleNotice  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleCurrent = lipgloss.NewStyle().Reverse(true).Bold(true)
	styleLabel   = lipgloss.NewStyle().Bold(true).Width(13)

	styleInput = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)
