package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	barWidth   = 40 // width of a full probability bar in characters
	labelWidth = 12 // width of the outcome label column
)

// Lipgloss styles used across the TUI.
var (
	probPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	descPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	targetBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	outcomeLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7dcfff"))

	targetLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#73daca"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
