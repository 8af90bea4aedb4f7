package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	indentStyle = lipgloss.NewStyle().
			PaddingLeft(3)

	reasonTextStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	suggestionTitleStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	suggestionTextStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	rawErrorTitleStyle = lipgloss.NewStyle().
				Foreground(colorGrey).
				Bold(true)

	rawErrorTextStyle = lipgloss.NewStyle().
				Foreground(colorGrey)
)

// RenderExchangeError renders a failed webhook exchange for terminal
// output: what happened, what to try, and the raw error.
func RenderExchangeError(err error) string {
	return renderErrorBox(
		"Webhook exchange failed",
		"The webhook did not return a usable analysis, so nothing was recorded.",
		"Check the webhook URL and resubmit the question.",
		err.Error(),
	)
}

func renderErrorBox(title, reason, suggestion, originalError string) string {
	// Wrap against the real terminal width so the indentation survives
	// on continuation lines
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	contentWidth := width - 5

	header := indentStyle.Render(errorHeaderStyle.Render(fmt.Sprintf("✕ %s", title)))

	var blocks []string
	blocks = append(blocks, reasonTextStyle.Width(contentWidth).Render(reason))
	if suggestion != "" {
		blocks = append(blocks, "",
			suggestionTitleStyle.Render("Suggestion:"),
			suggestionTextStyle.Width(contentWidth).Render(suggestion),
		)
	}
	if originalError != "" {
		blocks = append(blocks, "",
			rawErrorTitleStyle.Render("Raw Error:"),
			rawErrorTextStyle.Width(contentWidth).Render(strings.TrimSpace(originalError)),
		)
	}

	body := indentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return fmt.Sprintf("\n%s\n%s\n", header, body)
}
