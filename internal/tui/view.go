package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/repkit/repkit/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.contentView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) headerView() string {
	title := titleStyle.Render(constants.AppName)
	if m.screen == constants.ScreenLogin || m.screen == constants.ScreenSignup {
		return title
	}

	tabs := []struct {
		label  string
		active bool
	}{
		{"Dashboard", m.screen == constants.ScreenDashboard},
		{"Generate", m.screen == constants.ScreenGenerate || m.screen == constants.ScreenProgram},
		{"Workouts", m.screen == constants.ScreenWorkouts ||
			m.screen == constants.ScreenWorkoutDetail ||
			m.screen == constants.ScreenConfirmDelete},
	}

	rendered := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.active {
			rendered = append(rendered, activeTabStyle.Render(tab.label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tab.label))
		}
	}

	right := ""
	if m.user != nil {
		right = subtleStyle.Render(m.user.Email)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", strings.Join(rendered, " "), "  ", right)
}

func (m Model) contentView() string {
	switch m.screen {
	case constants.ScreenLogin:
		return m.loginView()
	case constants.ScreenSignup:
		return m.signupView()
	case constants.ScreenDashboard:
		return m.dashboardView()
	case constants.ScreenGenerate:
		return m.formView()
	case constants.ScreenProgram:
		return m.programScreenView()
	case constants.ScreenWorkouts:
		return m.workoutList.View()
	case constants.ScreenWorkoutDetail:
		return m.workoutDetailView()
	case constants.ScreenConfirmDelete:
		return m.confirmDeleteView()
	}
	return ""
}

func (m Model) formView() string {
	if m.form == nil {
		return ""
	}
	return m.form.View()
}

func (m Model) loginView() string {
	return m.formView() + "\n" + subtleStyle.Render("ctrl+n to create an account")
}

func (m Model) signupView() string {
	return m.formView() + "\n" + subtleStyle.Render("esc to go back to login")
}

func (m Model) dashboardView() string {
	var b strings.Builder
	if m.user != nil {
		b.WriteString(fmt.Sprintf("Welcome back, %s.\n\n", m.user.Email))
	}
	b.WriteString("Press 'g' to generate a training program or 'w' to browse saved workouts.")
	return b.String()
}

func (m Model) programScreenView() string {
	if m.form != nil {
		return m.programView.View() + "\n\n" + m.form.View()
	}

	footer := subtleStyle.Render("s to save, g to start over, esc for dashboard")
	if m.lastProgram != nil && m.lastProgram.Rejected != nil {
		footer = subtleStyle.Render("g to try again, esc for dashboard")
	}
	return m.programView.View() + "\n" + footer
}

func (m Model) workoutDetailView() string {
	if m.detail == nil {
		return ""
	}
	header := titleStyle.Render(m.detail.Title) + "  " + subtleStyle.Render(m.detail.CreatedAt)
	return header + "\n\n" + m.programView.View()
}

func (m Model) confirmDeleteView() string {
	title := m.deleteTargetID
	if m.detail != nil && m.detail.ID == m.deleteTargetID {
		title = m.detail.Title
	} else if selected := m.workoutList.Selected(); selected != nil && selected.ID == m.deleteTargetID {
		title = selected.Title
	}
	return dangerStyle.Render(fmt.Sprintf("Delete %q?", title)) + "\n\n" +
		"Press 'y' to delete, 'n' to keep it."
}

func (m Model) statusView() string {
	switch {
	case m.loading:
		return subtleStyle.Render("Working...")
	case m.errText != "":
		return dangerStyle.Render(m.errText)
	case m.notice != "":
		return noticeStyle.Render(m.notice)
	}
	return ""
}
