package constants

import "time"

// Intensity represents the intensity band of a generated training day
type Intensity string

// RejectionCode represents the backend's reason for declining to generate a program
type RejectionCode string

// Screen represents the current screen of the TUI application
type Screen int

// TokenBackend selects where the bearer credential is persisted
type TokenBackend string

const (
	AppName           = "repkit"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/repkit/config.yaml"

	// Credential storage. The keyring service/user pair is the single fixed
	// key for the bearer token; the file backend uses TokenFileName under
	// the config directory.
	KeyringService = "repkit"
	KeyringUser    = "access-token"
	TokenFileName  = "token.json"

	HistoryFileName = "history.db"

	// DefaultBaseURL is the backend targeted when no config overrides it.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultRequestTimeout bounds every backend call.
	DefaultRequestTimeout = 30 * time.Second

	// SessionPollInterval is how often the TUI re-checks the credential
	// store for changes made by other repkit processes.
	SessionPollInterval = 2 * time.Second

	// Token backends
	TokenBackendKeyring TokenBackend = "keyring"
	TokenBackendFile    TokenBackend = "file"

	// Intensity bands
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"

	// Rejection codes
	RejectionNotFitness RejectionCode = "NOT_FITNESS"
	RejectionTooVague   RejectionCode = "TOO_VAGUE"

	// MaxRenderedHints caps the rejection hints shown to the user.
	MaxRenderedHints = 3

	// Request text bounds
	MinRequestText = 12
	MaxRequestText = 4000

	// Preference bounds
	MinSessionsPerWeek  = 1
	MaxSessionsPerWeek  = 7
	MinDurationMinutes  = 10
	MaxDurationMinutes  = 180
	MaxGoalLen          = 80
	MaxLevelLen         = 40
	MaxEquipmentCSVLen  = 120
	MaxConstraintsLen   = 200
	MaxTitleLen         = 80
	MinPasswordLen      = 8
	MaxPasswordLen      = 72
	MaxExerciseListSize = 200
)

// TUI screens
const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenDashboard
	ScreenGenerate
	ScreenProgram
	ScreenWorkouts
	ScreenWorkoutDetail
	ScreenConfirmDelete
)

// Weekdays is the fixed tag set accepted by the backend for days_of_week.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
