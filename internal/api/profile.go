package api

import (
	"context"
	"net/http"

	"github.com/lancerhq/lancer/internal/models"
)

// GetProfile returns the current user's freelancer profile.
func (c *Client) GetProfile(ctx context.Context) (*models.FreelancerProfile, error) {
	var p models.FreelancerProfile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile replaces the editable parts of the profile.
func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.FreelancerProfile, error) {
	var p models.FreelancerProfile
	if err := c.do(ctx, http.MethodPut, "/profile", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
