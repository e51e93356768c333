package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/repkit/repkit/internal/models"
)

// CreateExerciseList saves a named list of exercises.
func (c *Client) CreateExerciseList(ctx context.Context, req models.CreateExerciseListRequest) (*models.ExerciseListSummary, error) {
	var summary models.ExerciseListSummary
	if err := c.do(ctx, http.MethodPost, "/api/exercise-lists", req, &summary, requestOpts{}); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListExerciseLists returns the caller's exercise lists, newest first.
func (c *Client) ListExerciseLists(ctx context.Context) ([]models.ExerciseListSummary, error) {
	var lists []models.ExerciseListSummary
	if err := c.do(ctx, http.MethodGet, "/api/exercise-lists", nil, &lists, requestOpts{}); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetExerciseList returns one exercise list with its items.
func (c *Client) GetExerciseList(ctx context.Context, id string) (*models.ExerciseListDetail, error) {
	var detail models.ExerciseListDetail
	if err := c.do(ctx, http.MethodGet, "/api/exercise-lists/"+url.PathEscape(id), nil, &detail, requestOpts{}); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteExerciseList removes an exercise list.
func (c *Client) DeleteExerciseList(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/exercise-lists/"+url.PathEscape(id), nil, nil, requestOpts{})
}
