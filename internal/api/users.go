package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lancerhq/lancer/internal/models"
)

// ListUsers returns all accounts (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserStatus suspends or reactivates an account (admin only).
func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error) {
	q := url.Values{"status": {string(status)}}
	var u models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/status", id), q, struct{}{}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
