package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the CLI output.
// Styles degrade to plain text when stdout is not a terminal.

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray
)
