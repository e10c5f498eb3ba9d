package models

import "time"

// AssessmentType values.
type AssessmentType string

const (
	MCQ             AssessmentType = "MCQ"
	Typing          AssessmentType = "TYPING"
	PracticalUpload AssessmentType = "PRACTICAL_UPLOAD"
	Mixed           AssessmentType = "MIXED"
)

// AssessmentStatus values.
type AssessmentStatus string

const (
	NotStarted AssessmentStatus = "NOT_STARTED"
	InProgress AssessmentStatus = "IN_PROGRESS"
	Submitted  AssessmentStatus = "SUBMITTED"
	Graded     AssessmentStatus = "GRADED"
)

// Question is a single assessment question. Options are empty for
// non-MCQ question kinds.
type Question struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options,omitempty"`
	MaxScore int      `json:"maxScore"`
}

// Assessment is a project's screening test for an applicant.
type Assessment struct {
	ID           int64            `json:"id"`
	ProjectID    int64            `json:"projectId"`
	ProjectTitle string           `json:"projectTitle,omitempty"`
	Type         AssessmentType   `json:"type"`
	Questions    []Question       `json:"questions"`
	Score        *float64         `json:"score,omitempty"`
	Status       AssessmentStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty"`
}

// AssessmentSubmission is the body for POST /assessments/{id}/submit.
// Answers are keyed by question ID.
type AssessmentSubmission struct {
	Answers map[int64]string `json:"answers" validate:"required,min=1"`
}
