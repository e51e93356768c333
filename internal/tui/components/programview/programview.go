// Package programview renders a program result in a scrollable viewport.
package programview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
)

var (
	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	rejectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	ready    bool
}

func New(width, height int) Model {
	m := Model{viewport: viewport.New(width, height)}
	m.ready = width > 0 && height > 0
	return m
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.ready = width > 0 && height > 0
}

// SetProgram fills the viewport with either variant of the union.
func (m *Model) SetProgram(resp models.ProgramResponse) {
	m.viewport.SetContent(render(resp))
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}

func render(resp models.ProgramResponse) string {
	var b strings.Builder

	switch {
	case resp.OK != nil:
		for i, day := range resp.OK.Days {
			if i > 0 {
				b.WriteString("\n")
			}
			renderDay(&b, day)
		}
	case resp.Rejected != nil:
		b.WriteString(rejectionStyle.Render(fmt.Sprintf("Request declined (%s)", resp.Rejected.Code)))
		b.WriteString("\n")
		b.WriteString(resp.Rejected.Message)
		b.WriteString("\n")
		hints := resp.Rejected.Hints
		if len(hints) > constants.MaxRenderedHints {
			hints = hints[:constants.MaxRenderedHints]
		}
		for _, hint := range hints {
			b.WriteString(sectionStyle.Render("hint: " + hint))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDay(b *strings.Builder, day models.Day) {
	b.WriteString(dayHeaderStyle.Render(fmt.Sprintf("Day %d: %s", day.Day, day.Focus)))
	b.WriteString(fmt.Sprintf("  %s · %d min · ~%d kcal\n",
		day.Intensity, day.DurationMinutes, day.EstimatedCalories))

	if len(day.Equipment) > 0 {
		b.WriteString(sectionStyle.Render("Equipment: " + strings.Join(day.Equipment, ", ")))
		b.WriteString("\n")
	}
	if len(day.Warmup) > 0 {
		b.WriteString(sectionStyle.Render("Warmup: " + strings.Join(day.Warmup, ", ")))
		b.WriteString("\n")
	}
	for i, ex := range day.Exercises {
		b.WriteString(fmt.Sprintf("  %d. %s: %d x %s, rest %ds\n",
			i+1, ex.Name, ex.Sets, ex.Reps, ex.RestSeconds))
	}
	if len(day.Cooldown) > 0 {
		b.WriteString(sectionStyle.Render("Cooldown: " + strings.Join(day.Cooldown, ", ")))
		b.WriteString("\n")
	}
}
