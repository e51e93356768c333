package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/repkit/repkit/internal/api"
	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.programView.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case authChangedMsg:
		return m.handleAuthChanged(msg)

	case sessionTickMsg:
		m.ctx.Session.Check()
		return m, sessionTick()

	case apiErrMsg:
		m.loading = false
		if api.IsUnauthorized(msg.err) {
			// The client already purged the credential; the bus
			// notification redirects us. Just explain why.
			m.errText = "Unauthorized, please log in again"
		} else {
			m.errText = msg.err.Error()
		}
		return m, nil

	case loginDoneMsg, signupDoneMsg:
		m.loading = false
		m.notice = "Logged in"
		m.errText = ""
		return m, m.loadMe()

	case meLoadedMsg:
		m.user = msg.user
		return m, nil

	case programGeneratedMsg:
		m.loading = false
		m.errText = ""
		m.lastProgram = msg.resp
		m.lastInput = msg.inputText
		m.lastPrefs = msg.prefs
		m.programView.SetProgram(*msg.resp)
		m.form = nil
		m.screen = constants.ScreenProgram
		return m, nil

	case workoutsLoadedMsg:
		m.loading = false
		m.workoutList.SetItems(msg.workouts)
		if m.screen == constants.ScreenDashboard {
			m.screen = constants.ScreenWorkouts
		}
		return m, nil

	case workoutDetailMsg:
		m.loading = false
		m.detail = msg.detail
		m.programView.SetProgram(msg.detail.Program)
		m.screen = constants.ScreenWorkoutDetail
		return m, nil

	case workoutSavedMsg:
		m.loading = false
		m.form = nil
		m.saveForm = nil
		m.notice = "Saved as " + msg.summary.Title
		return m, nil

	case workoutDeletedMsg:
		m.loading = false
		m.notice = "Workout deleted"
		m.screen = constants.ScreenWorkouts
		m.deleteTargetID = ""
		return m, m.loadWorkouts()
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.quitting = true
		m.teardown()
		return m, tea.Quit
	}

	switch m.screen {
	case constants.ScreenLogin:
		return m.updateLogin(msg)
	case constants.ScreenSignup:
		return m.updateSignup(msg)
	case constants.ScreenDashboard:
		return m.updateDashboard(msg)
	case constants.ScreenGenerate:
		return m.updateGenerate(msg)
	case constants.ScreenProgram:
		return m.updateProgram(msg)
	case constants.ScreenWorkouts:
		return m.updateWorkouts(msg)
	case constants.ScreenWorkoutDetail:
		return m.updateWorkoutDetail(msg)
	case constants.ScreenConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

// handleAuthChanged re-applies the gate for the current screen. Listeners
// carry no token; session state is re-read here.
func (m Model) handleAuthChanged(msg authChangedMsg) (tea.Model, tea.Cmd) {
	loggedIn := m.ctx.Session.LoggedIn()
	cmds := []tea.Cmd{waitForAuthChange(m.authCh)}

	switch resolveGate(screenAccess(m.screen), loggedIn) {
	case gateRedirectLogin:
		m.user = nil
		m.detail = nil
		m.lastProgram = nil
		m.workoutList.SetItems(nil)
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
		m.screen = constants.ScreenLogin
		if msg.origin == session.OriginExternal {
			m.notice = "Logged out in another session"
		}
		cmds = append(cmds, m.form.Init())
	case gateRedirectDashboard:
		m.form = nil
		m.screen = constants.ScreenDashboard
		if msg.origin == session.OriginExternal {
			m.notice = "Logged in from another session"
		}
		cmds = append(cmds, m.loadMe())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+n":
			m.signupForm = &SignupFormModel{}
			m.form = newSignupForm(m.signupForm)
			m.screen = constants.ScreenSignup
			return m, m.form.Init()
		case "esc":
			m.quitting = true
			m.teardown()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m, cmd = m.updateForm(msg)

	if m.form.State == huh.StateCompleted {
		m.loading = true
		m.errText = ""
		data := *m.loginForm
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
		return m, tea.Batch(cmd, m.form.Init(), m.login(data.Email, data.Password))
	}
	return m, cmd
}

func (m Model) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
		m.screen = constants.ScreenLogin
		return m, m.form.Init()
	}

	var cmd tea.Cmd
	m, cmd = m.updateForm(msg)

	if m.form.State == huh.StateCompleted {
		m.loading = true
		m.errText = ""
		data := *m.signupForm
		m.signupForm = &SignupFormModel{}
		m.form = newSignupForm(m.signupForm)
		return m, tea.Batch(cmd, m.form.Init(), m.signup(data.Email, data.Password))
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.teardown()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Generate):
		return m.openGenerateForm()
	case key.Matches(keyMsg, m.keys.Workouts):
		m.loading = true
		return m, m.loadWorkouts()
	case key.Matches(keyMsg, m.keys.Logout):
		return m.logout()
	}
	return m, nil
}

func (m Model) openGenerateForm() (tea.Model, tea.Cmd) {
	m.generateForm = &GenerateFormModel{}
	m.form = newGenerateForm(m.generateForm)
	m.screen = constants.ScreenGenerate
	m.notice = ""
	m.errText = ""
	return m, m.form.Init()
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.ctx.API.Logout(); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	// The bus notification handles the redirect.
	return m, nil
}

func (m Model) updateGenerate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.form = nil
		m.screen = constants.ScreenDashboard
		return m, nil
	}

	var cmd tea.Cmd
	m, cmd = m.updateForm(msg)

	if m.form.State == huh.StateCompleted {
		m.loading = true
		m.errText = ""
		req := m.generateForm.request()
		// Rebuild the form so a failed request leaves the inputs editable
		// instead of stuck in the completed state.
		m.form = newGenerateForm(m.generateForm)
		return m, tea.Batch(cmd, m.form.Init(), m.generate(req))
	}
	return m, cmd
}

func (m Model) updateProgram(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A save form may be layered over the program view.
	if m.form != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.form = nil
			m.saveForm = nil
			return m, nil
		}

		var cmd tea.Cmd
		m, cmd = m.updateForm(msg)

		if m.form.State == huh.StateCompleted {
			m.loading = true
			req := models.SaveWorkoutRequest{
				Title:       m.saveForm.Title,
				InputText:   m.lastInput,
				Preferences: m.lastPrefs,
				Program:     *m.lastProgram,
			}
			m.form = nil
			m.saveForm = nil
			return m, tea.Batch(cmd, m.saveWorkout(req))
		}
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.screen = constants.ScreenDashboard
			return m, nil
		case key.Matches(keyMsg, m.keys.Generate):
			return m.openGenerateForm()
		case key.Matches(keyMsg, m.keys.Save):
			if m.lastProgram != nil && m.lastProgram.IsOK() {
				m.saveForm = &SaveFormModel{}
				m.form = newSaveForm(m.saveForm)
				return m, m.form.Init()
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			m.teardown()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.programView, cmd = m.programView.Update(msg)
	return m, cmd
}

func (m Model) updateWorkouts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.screen = constants.ScreenDashboard
			return m, nil
		case key.Matches(keyMsg, m.keys.Refresh):
			m.loading = true
			return m, m.loadWorkouts()
		case key.Matches(keyMsg, m.keys.Enter):
			if selected := m.workoutList.Selected(); selected != nil {
				m.loading = true
				return m, m.loadWorkout(selected.ID)
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			if selected := m.workoutList.Selected(); selected != nil {
				m.deleteTargetID = selected.ID
				m.screen = constants.ScreenConfirmDelete
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			m.teardown()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.workoutList, cmd = m.workoutList.Update(msg)
	return m, cmd
}

func (m Model) updateWorkoutDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.detail = nil
			m.screen = constants.ScreenWorkouts
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			if m.detail != nil {
				m.deleteTargetID = m.detail.ID
				m.screen = constants.ScreenConfirmDelete
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			m.teardown()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.programView, cmd = m.programView.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.loading = true
		return m, m.deleteWorkout(m.deleteTargetID)
	case "n", "N", "esc":
		m.deleteTargetID = ""
		m.screen = constants.ScreenWorkouts
		return m, nil
	}
	return m, nil
}
