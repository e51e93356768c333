package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/logger"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/session"
)

func waitForAuthChange(ch <-chan session.Origin) tea.Cmd {
	return func() tea.Msg {
		return authChangedMsg{origin: <-ch}
	}
}

func sessionTick() tea.Cmd {
	return tea.Tick(constants.SessionPollInterval, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}

func (m Model) login(email, password string) tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		if _, err := api.Login(context.Background(), email, password); err != nil {
			return apiErrMsg{err}
		}
		return loginDoneMsg{}
	}
}

func (m Model) signup(email, password string) tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		if _, err := api.Signup(context.Background(), email, password); err != nil {
			return apiErrMsg{err}
		}
		if _, err := api.Login(context.Background(), email, password); err != nil {
			return apiErrMsg{err}
		}
		return signupDoneMsg{}
	}
}

func (m Model) loadMe() tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		user, err := api.Me(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return meLoadedMsg{user: user}
	}
}

func (m Model) generate(req models.GenerateRequest) tea.Cmd {
	appCtx := m.ctx
	return func() tea.Msg {
		resp, err := appCtx.API.GenerateProgram(context.Background(), req)
		if err != nil {
			return apiErrMsg{err}
		}
		recordHistory(appCtx, req, *resp)
		return programGeneratedMsg{resp: resp, inputText: req.Text, prefs: req.Preferences}
	}
}

// recordHistory appends to the local cache; failures are logged only.
func recordHistory(ctx *cli.Context, req models.GenerateRequest, resp models.ProgramResponse) {
	store, err := ctx.OpenHistory()
	if err != nil {
		logger.Warn("Could not open history store", "error", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(req.Text, req.Preferences, resp); err != nil {
		logger.Warn("Could not record generation in history", "error", err)
	}
}

func (m Model) loadWorkouts() tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		workouts, err := api.ListWorkouts(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return workoutsLoadedMsg{workouts: workouts}
	}
}

func (m Model) loadWorkout(id string) tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		detail, err := api.GetWorkout(context.Background(), id)
		if err != nil {
			return apiErrMsg{err}
		}
		return workoutDetailMsg{detail: detail}
	}
}

func (m Model) saveWorkout(req models.SaveWorkoutRequest) tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		summary, err := api.SaveWorkout(context.Background(), req)
		if err != nil {
			return apiErrMsg{err}
		}
		return workoutSavedMsg{summary: summary}
	}
}

func (m Model) deleteWorkout(id string) tea.Cmd {
	api := m.ctx.API
	return func() tea.Msg {
		if err := api.DeleteWorkout(context.Background(), id); err != nil {
			return apiErrMsg{err}
		}
		return workoutDeletedMsg{id: id}
	}
}
