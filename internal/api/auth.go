package api

import (
	"context"
	"net/http"

	"github.com/repkit/repkit/internal/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account. It does not log the user in; callers follow up
// with Login.
func (c *Client) Signup(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/auth/signup",
		credentialsRequest{Email: email, Password: password}, &user, requestOpts{})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token and stores it in the
// session on success. A rejected login leaves the stored credential exactly
// as it was.
func (c *Client) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var tok models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		credentialsRequest{Email: email, Password: password}, &tok, requestOpts{skipPurge: true})
	if err != nil {
		return nil, err
	}
	if err := c.session.Set(tok.AccessToken); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user, requestOpts{}); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the stored credential. Purely client-side; the backend
// holds no session state to invalidate.
func (c *Client) Logout() error {
	return c.session.Clear()
}
