package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lancerhq/lancer/internal/models"
)

// ProjectFilter narrows ListProjects. Zero value lists everything.
type ProjectFilter struct {
	Type         models.ProjectType
	EligibleOnly bool
}

// ListProjects returns projects, optionally filtered by type and
// eligibility for the current user.
func (c *Client) ListProjects(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("projectType", string(filter.Type))
	}
	if filter.EligibleOnly {
		q.Set("eligibleOnly", "true")
	}

	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", q, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject posts a new project (admin only).
func (c *Client) CreateProject(ctx context.Context, req models.ProjectRequest) (*models.Project, error) {
	var p models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject replaces a project's fields (admin only).
func (c *Client) UpdateProject(ctx context.Context, id int64, req models.ProjectRequest) (*models.Project, error) {
	var p models.Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes a project (admin only).
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil, nil)
}

// ApplyToProject applies the current user to a project and returns
// the new application's id.
func (c *Client) ApplyToProject(ctx context.Context, id int64) (int64, error) {
	var applicationID int64
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/apply", id), nil, struct{}{}, &applicationID); err != nil {
		return 0, err
	}
	return applicationID, nil
}
