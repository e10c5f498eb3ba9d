package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lancerhq/lancer/internal/models"
)

// StartWork opens a work session on a project. The server rejects a
// second ACTIVE session with a conflict.
func (c *Client) StartWork(ctx context.Context, req models.WorkStartRequest) (*models.WorkSession, error) {
	var ws models.WorkSession
	if err := c.do(ctx, http.MethodPost, "/work/start", nil, req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// StopWork closes the active session, recording optional notes.
func (c *Client) StopWork(ctx context.Context, req models.WorkStopRequest) (*models.WorkSession, error) {
	var ws models.WorkSession
	if err := c.do(ctx, http.MethodPost, "/work/stop", nil, req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// WorkSessions lists the user's sessions, optionally for one project.
func (c *Client) WorkSessions(ctx context.Context, projectID int64) ([]models.WorkSession, error) {
	q := url.Values{}
	if projectID > 0 {
		q.Set("projectId", strconv.FormatInt(projectID, 10))
	}

	var sessions []models.WorkSession
	if err := c.do(ctx, http.MethodGet, "/work/sessions", q, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ActiveWorkSession returns the ACTIVE session, or nil when there is
// none; "none" is an answer here, not an error.
func (c *Client) ActiveWorkSession(ctx context.Context) (*models.WorkSession, error) {
	var ws models.WorkSession
	err := c.do(ctx, http.MethodGet, "/work/active", nil, nil, &ws)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Kind == KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &ws, nil
}

// TodayHours returns the hours worked today across all projects.
func (c *Client) TodayHours(ctx context.Context) (float64, error) {
	var hours float64
	if err := c.do(ctx, http.MethodGet, "/work/today-hours", nil, nil, &hours); err != nil {
		return 0, err
	}
	return hours, nil
}
