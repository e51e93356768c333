// Package workoutlist is a cursor list over saved workout summaries.
package workoutlist

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/repkit/repkit/internal/models"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	items  []models.WorkoutSummary
	cursor int
}

func New(items []models.WorkoutSummary) Model {
	return Model{items: items}
}

func (m *Model) SetItems(items []models.WorkoutSummary) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the summary under the cursor, or nil for an empty list.
func (m Model) Selected() *models.WorkoutSummary {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}

func (m Model) Len() int {
	return len(m.items)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return metaStyle.Render("No saved workouts yet. Generate a program and press 's' to save it.")
	}

	var out string
	for i, item := range m.items {
		line := item.Title + "  " + metaStyle.Render(item.CreatedAt)
		if i == m.cursor {
			out += selectedStyle.Render("> "+line) + "\n"
		} else {
			out += normalStyle.Render("  "+line) + "\n"
		}
	}
	return out
}
