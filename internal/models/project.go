package models

import "time"

// ProjectType values.
type ProjectType string

const (
	DataEntry      ProjectType = "DATA_ENTRY"
	ContentWriting ProjectType = "CONTENT_WRITING"
	Development    ProjectType = "DEVELOPMENT"
	Design         ProjectType = "DESIGN"
	Support        ProjectType = "CUSTOMER_SUPPORT"
)

// ProjectStatus values.
type ProjectStatus string

const (
	ProjectOpen      ProjectStatus = "OPEN"
	ProjectClosed    ProjectStatus = "CLOSED"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// Project is a posting freelancers can apply to.
type Project struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	StatementOfWork  string        `json:"statementOfWork,omitempty"`
	ProjectType      ProjectType   `json:"projectType"`
	MinScore         float64       `json:"minScore"`
	PayoutAmount     float64       `json:"payoutAmount"`
	BillingCycleDays int           `json:"billingCycleDays"`
	DurationDays     *int          `json:"durationDays,omitempty"`
	CRMProvided      bool          `json:"crmProvided"`
	Status           ProjectStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// ProjectRequest is the body for creating or updating a project.
type ProjectRequest struct {
	Title            string      `json:"title" validate:"required"`
	Description      string      `json:"description,omitempty"`
	StatementOfWork  string      `json:"statementOfWork,omitempty"`
	ProjectType      ProjectType `json:"projectType" validate:"required"`
	MinScore         float64     `json:"minScore" validate:"gte=0,lte=100"`
	PayoutAmount     float64     `json:"payoutAmount" validate:"gt=0"`
	BillingCycleDays int         `json:"billingCycleDays" validate:"gt=0"`
	DurationDays     *int        `json:"durationDays,omitempty" validate:"omitempty,gt=0"`
	CRMProvided      bool        `json:"crmProvided"`
	CRMURL           string      `json:"crmUrl,omitempty" validate:"omitempty,url"`
}
