package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// SmartRender renders analysis content for the detail view using glamour.
// JSON payloads are wrapped in a fenced code block so they come out
// syntax highlighted; anything else is treated as markdown. A width of
// zero or less falls back to a reasonable terminal default.
func SmartRender(input string, width int) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if width <= 0 {
		width = 100
	}

	// Wrap raw JSON in a markdown block so glamour treats it as code
	if (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
		if isJSON(trimmed) {
			input = fmt.Sprintf("```json\n%s\n```", trimmed)
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return input // Fallback to raw text on error
	}

	out, err := renderer.Render(input)
	if err != nil {
		return input // Fallback to raw text on error
	}

	return out
}

// Helper to check validity
func isJSON(s string) bool {
	var js json.RawMessage
	return json.Unmarshal([]byte(s), &js) == nil
}
