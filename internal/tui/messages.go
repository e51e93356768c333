package tui

import (
	"time"

	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/session"
)

// authChangedMsg is delivered whenever the credential changes, locally or in
// another process. Handlers re-read the session; the message carries no
// token.
type authChangedMsg struct {
	origin session.Origin
}

// sessionTickMsg drives the external-change poll.
type sessionTickMsg time.Time

// apiErrMsg carries a failed remote call to the status line.
type apiErrMsg struct {
	err error
}

type meLoadedMsg struct {
	user *models.User
}

type programGeneratedMsg struct {
	resp      *models.ProgramResponse
	inputText string
	prefs     *models.Preferences
}

type workoutsLoadedMsg struct {
	workouts []models.WorkoutSummary
}

type workoutDetailMsg struct {
	detail *models.WorkoutDetail
}

type workoutSavedMsg struct {
	summary *models.WorkoutSummary
}

type workoutDeletedMsg struct {
	id string
}

type loginDoneMsg struct{}

type signupDoneMsg struct{}
