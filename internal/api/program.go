package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
)

// GenerateProgram asks the backend for a multi-day program. The backend
// reports domain rejections as 422 with a structured detail; those are
// folded back into the ProgramResponse union so every caller handles the
// accepted and rejected variants exhaustively. Any other failure is
// returned as an error.
func (c *Client) GenerateProgram(ctx context.Context, req models.GenerateRequest) (*models.ProgramResponse, error) {
	var resp models.ProgramResponse
	err := c.do(ctx, http.MethodPost, "/api/ai/program", req, &resp, requestOpts{})
	if err == nil {
		return &resp, nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity && apiErr.IsRejection() {
		return &models.ProgramResponse{
			Rejected: &models.Rejection{
				Code:    constants.RejectionCode(apiErr.Code),
				Message: apiErr.Message,
				Hints:   apiErr.Hints,
			},
		}, nil
	}
	return nil, err
}
