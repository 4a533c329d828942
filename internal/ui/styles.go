package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): Primary text
// - Accent (soft blue #7AA2F7): Highlights, paths, command names
// - Muted (gray): Secondary info, line numbers
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#7AA2F7"

var accentColor = defaultAccent

var (
	// Accent style for file paths, command names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, line numbers
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

// ConfigureTheme overrides the accent color from config.
// Accepts ANSI color codes ("0"-"255") or hex colors ("#RRGGBB");
// an empty value keeps the default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	accentColor = accent
	color := lipgloss.Color(accent)
	Accent = lipgloss.NewStyle().Foreground(color)
	AccentBold = lipgloss.NewStyle().Foreground(color).Bold(true)
}

// AccentColor returns the current accent color value.
func AccentColor() string {
	return accentColor
}
