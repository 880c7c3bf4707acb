// Package picker is a full-screen quiz chooser for terminals.
package picker

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// ErrCanceled is returned when the user leaves the picker without choosing.
var ErrCanceled = errors.New("quiz selection canceled")

var keyHints = []layout.KeyHint{
	{Key: "↑↓", Description: "Navigate"},
	{Key: "Enter", Description: "Select"},
	{Key: "Esc", Description: "Quit"},
}

// Model is the Bubble Tea model for choosing one item from a list.
type Model struct {
	title    string
	items    []string
	selected int
	chosen   int
}

// New creates a picker over items. items must not be empty.
func New(title string, items []string) Model {
	return Model{title: title, items: items, chosen: -1}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = len(m.items) - 1
	case "enter":
		m.chosen = m.selected
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		return m, tea.Quit
	default:
		// Digits jump straight to a 1-based position.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if n := int(key[0] - '1'); n < len(m.items) {
				m.selected = n
			}
		}
	}

	return m, nil
}

// Render returns the picker as text.
func (m Model) Render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%2d. %s", i+1, item)
		if i == m.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.RenderKeyHints(keyHints))
	return b.String()
}

func (m Model) View() tea.View {
	return tea.NewView(m.Render())
}

// Chosen returns the 0-based index of the chosen item, if any.
func (m Model) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Run shows the picker and blocks until the user chooses or cancels.
func Run(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("nothing to pick from")
	}

	final, err := tea.NewProgram(New(title, items)).Run()
	if err != nil {
		return 0, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return 0, fmt.Errorf("unexpected picker model %T", final)
	}
	idx, ok := m.Chosen()
	if !ok {
		return 0, ErrCanceled
	}
	return idx, nil
}
