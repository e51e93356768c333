package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/repkit/repkit/internal/models"
)

// SaveWorkout persists a generated program under a title.
func (c *Client) SaveWorkout(ctx context.Context, req models.SaveWorkoutRequest) (*models.WorkoutSummary, error) {
	var summary models.WorkoutSummary
	if err := c.do(ctx, http.MethodPost, "/api/workouts", req, &summary, requestOpts{}); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListWorkouts returns the caller's saved workouts, newest first.
func (c *Client) ListWorkouts(ctx context.Context) ([]models.WorkoutSummary, error) {
	var workouts []models.WorkoutSummary
	if err := c.do(ctx, http.MethodGet, "/api/workouts", nil, &workouts, requestOpts{}); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkout returns one saved workout with its full program.
func (c *Client) GetWorkout(ctx context.Context, id string) (*models.WorkoutDetail, error) {
	var detail models.WorkoutDetail
	if err := c.do(ctx, http.MethodGet, "/api/workouts/"+url.PathEscape(id), nil, &detail, requestOpts{}); err != nil {
		return nil, err
	}
	return &detail, nil
}

// RenameWorkout updates a saved workout's title.
func (c *Client) RenameWorkout(ctx context.Context, id, title string) (*models.WorkoutSummary, error) {
	var summary models.WorkoutSummary
	err := c.do(ctx, http.MethodPut, "/api/workouts/"+url.PathEscape(id),
		models.RenameWorkoutRequest{Title: title}, &summary, requestOpts{})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// DeleteWorkout removes a saved workout.
func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/workouts/"+url.PathEscape(id), nil, nil, requestOpts{})
}
