package main

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7C9A6D")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)
)

// Heatmap cells from "nothing done" to "everything done".
var intensityStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#9BE9A8")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#40C463")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#30A14E")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#216E39")),
}
