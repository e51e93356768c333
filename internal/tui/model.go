package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/session"
	"github.com/repkit/repkit/internal/tui/components/programview"
	"github.com/repkit/repkit/internal/tui/components/workoutlist"
)

type Model struct {
	ctx    *cli.Context
	screen constants.Screen
	keys   KeyMap
	help   help.Model

	form         *huh.Form
	loginForm    *LoginFormModel
	signupForm   *SignupFormModel
	generateForm *GenerateFormModel
	saveForm     *SaveFormModel

	programView programview.Model
	workoutList workoutlist.Model
	detail      *models.WorkoutDetail

	// last generated program, kept around for saving
	lastProgram *models.ProgramResponse
	lastInput   string
	lastPrefs   *models.Preferences

	user           *models.User
	notice         string
	errText        string
	loading        bool
	quitting       bool
	width          int
	height         int
	deleteTargetID string

	// bridge from the auth bus into the tea message loop
	authCh      chan session.Origin
	unsubscribe func()
}

func NewModel(ctx *cli.Context) Model {
	m := Model{
		ctx:         ctx,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		programView: programview.New(0, 0),
		workoutList: workoutlist.New(nil),
	}

	// Buffered, non-blocking bridge: listeners carry no value, so dropping
	// a publish when the channel is full loses nothing. The handler
	// re-reads session state anyway.
	m.authCh = make(chan session.Origin, 8)
	m.unsubscribe = ctx.Session.Subscribe(func(origin session.Origin) {
		select {
		case m.authCh <- origin:
		default:
		}
	})

	if ctx.Session.LoggedIn() {
		m.screen = constants.ScreenDashboard
	} else {
		m.screen = constants.ScreenLogin
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForAuthChange(m.authCh),
		sessionTick(),
	}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	if m.screen == constants.ScreenDashboard {
		cmds = append(cmds, m.loadMe())
	}
	return tea.Batch(cmds...)
}

// teardown releases the bus subscription so no listener outlives the TUI.
func (m *Model) teardown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
