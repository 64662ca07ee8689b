package main

import "github.com/charmbracelet/lipgloss"

// Semantic colors for summary output, shared across subcommands.
var (
	successColor = lipgloss.Color("#8BC34A") // Lime Green
	errorColor   = lipgloss.Color("#e53935") // Red
	infoColor    = lipgloss.Color("#2196F3") // Blue

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(infoColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
)
