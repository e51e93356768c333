package models

// User is the authenticated account as reported by /api/auth/me.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenResponse is the login result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// WorkoutSummary is a saved workout as it appears in list views.
type WorkoutSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// WorkoutDetail is a saved workout with its original input and full program.
type WorkoutDetail struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	InputText   string          `json:"input_text,omitempty"`
	Preferences *Preferences    `json:"preferences,omitempty"`
	Program     ProgramResponse `json:"program"`
	CreatedAt   string          `json:"created_at"`
}

// SaveWorkoutRequest is the payload for POST /api/workouts.
type SaveWorkoutRequest struct {
	Title       string          `json:"title"`
	InputText   string          `json:"input_text,omitempty"`
	Preferences *Preferences    `json:"preferences,omitempty"`
	Program     ProgramResponse `json:"program"`
}

// RenameWorkoutRequest is the payload for PUT /api/workouts/{id}.
type RenameWorkoutRequest struct {
	Title string `json:"title"`
}
