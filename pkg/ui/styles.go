package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// --- COLORS ---
	colorAccent = lipgloss.Color("63")  // Purple
	colorCyan   = lipgloss.Color("86")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("226")
	colorWhite  = lipgloss.Color("252")
	colorGrey   = lipgloss.Color("240")
)

// RenderNoticeBox renders a bordered notice used for blocking warnings,
// like asking a question before any webhook URL is configured.
func RenderNoticeBox(title, body string) string {
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorYellow).
		Padding(0, 2).
		Width(60)

	titleStyle := lipgloss.NewStyle().
		Foreground(colorYellow).
		Bold(true)

	bodyStyle := lipgloss.NewStyle().
		Foreground(colorWhite)

	var content strings.Builder
	content.WriteString(titleStyle.Render(title))
	if body != "" {
		content.WriteString("\n\n")
		content.WriteString(bodyStyle.Render(body))
	}

	return boxStyle.Render(strings.TrimSpace(content.String())) + "\n"
}
