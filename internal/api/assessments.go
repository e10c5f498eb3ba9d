package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lancerhq/lancer/internal/models"
)

// GetAssessment fetches an assessment, questions included.
func (c *Client) GetAssessment(ctx context.Context, id int64) (*models.Assessment, error) {
	var a models.Assessment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assessments/%d", id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// StartAssessment moves an assessment to IN_PROGRESS server-side.
func (c *Client) StartAssessment(ctx context.Context, id int64) (*models.Assessment, error) {
	var a models.Assessment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/assessments/%d/start", id), nil, struct{}{}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SubmitAssessment sends the answers in for grading.
func (c *Client) SubmitAssessment(ctx context.Context, id int64, sub models.AssessmentSubmission) (*models.Assessment, error) {
	var a models.Assessment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/assessments/%d/submit", id), nil, sub, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AssessmentResult fetches the graded assessment with its score.
func (c *Client) AssessmentResult(ctx context.Context, id int64) (*models.Assessment, error) {
	var a models.Assessment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assessments/%d/result", id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
