package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lancerhq/lancer/internal/models"
)

// ListApplications returns the current user's applications.
func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetApplication returns one application by id.
func (c *Client) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/%d", id), nil, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ProjectApplications lists every application for a project (admin view).
func (c *Client) ProjectApplications(ctx context.Context, projectID int64) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/project/%d", projectID), nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SignAgreement signs the work agreement for an eligible application.
// The server returns the application with its advanced status.
func (c *Client) SignAgreement(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/applications/%d/sign-agreement", id), nil, struct{}{}, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateApplicationStatus sets an application's status (admin only).
// The status travels as a query parameter, matching the backend route.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	q := url.Values{"status": {string(status)}}
	var app models.Application
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/applications/%d/status", id), q, struct{}{}, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ApplicationsByStatus lists applications in a given status.
func (c *Client) ApplicationsByStatus(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications/status/"+string(status), nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
