package cmd

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// sessionStyles maps the theme onto session output. Disabled color yields
// plain text.
func sessionStyles(color bool) session.Styles {
	if !color {
		return session.Styles{}
	}
	return session.Styles{
		Question: render(theme.Question),
		Correct:  render(theme.Correct),
		Wrong:    render(theme.Incorrect),
		Skipped:  render(theme.Skipped),
		Summary:  render(theme.Summary),
	}
}
