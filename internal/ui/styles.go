// Package ui hosts the interactive demo loop: a bubbletea program that
// feeds terminal mouse events into the input tracker and advances it once
// per tick.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent across the demo
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PressedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	EdgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)
)
