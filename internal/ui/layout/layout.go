package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// KeyHint represents a key binding hint shown under a view.
type KeyHint struct {
	Key         string
	Description string
}

// RenderKeyHints renders hints on one line, key in bold and description dimmed.
func RenderKeyHints(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	return "  " + strings.Join(parts, "   ")
}
