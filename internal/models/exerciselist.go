package models

// ExerciseListSummary is a saved exercise list as it appears in list views.
type ExerciseListSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ExerciseListDetail is a saved exercise list with its items.
type ExerciseListDetail struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Items     []string `json:"items"`
	CreatedAt string   `json:"created_at"`
}

// CreateExerciseListRequest is the payload for POST /api/exercise-lists.
type CreateExerciseListRequest struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}
