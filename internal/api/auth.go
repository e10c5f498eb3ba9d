package api

import (
	"context"
	"net/http"

	"github.com/lancerhq/lancer/internal/models"
)

// Login exchanges credentials for a session. The error comes back
// normalized but otherwise untouched; the session store decides what
// to persist.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	var sess models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Signup registers a new account. Signing up does not log in; the
// caller follows with Login.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.Session, error) {
	var sess models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
