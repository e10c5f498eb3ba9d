package models

import "time"

// WorkSessionStatus values. The server guarantees at most one ACTIVE
// session per user; the client relies on that invariant.
type WorkSessionStatus string

const (
	SessionActive    WorkSessionStatus = "ACTIVE"
	SessionCompleted WorkSessionStatus = "COMPLETED"
	SessionCancelled WorkSessionStatus = "CANCELLED"
)

// WorkSession is one tracked block of work on a project.
type WorkSession struct {
	ID           int64             `json:"id"`
	ProjectID    int64             `json:"projectId"`
	ProjectTitle string            `json:"projectTitle,omitempty"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      *time.Time        `json:"endTime,omitempty"`
	Hours        *float64          `json:"hours,omitempty"`
	Status       WorkSessionStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
}

// WorkStartRequest is the body for POST /work/start.
type WorkStartRequest struct {
	ProjectID int64 `json:"projectId" validate:"required,gt=0"`
}

// WorkStopRequest is the body for POST /work/stop.
type WorkStopRequest struct {
	Notes string `json:"notes,omitempty"`
}
