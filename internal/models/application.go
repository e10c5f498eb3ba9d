package models

import "time"

// ApplicationStatus values as assigned by the backend. The client never
// computes these, it only displays them.
type ApplicationStatus string

const (
	Applied              ApplicationStatus = "APPLIED"
	AssessmentInProgress ApplicationStatus = "ASSESSMENT_IN_PROGRESS"
	AssessmentCompleted  ApplicationStatus = "ASSESSMENT_COMPLETED"
	Eligible             ApplicationStatus = "ELIGIBLE"
	PendingVerification  ApplicationStatus = "PENDING_VERIFICATION"
	AgreementSigned      ApplicationStatus = "AGREEMENT_SIGNED"
	ApplicationActive    ApplicationStatus = "ACTIVE"
	ApplicationCompleted ApplicationStatus = "COMPLETED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationCancelled ApplicationStatus = "CANCELLED"
)

// Application is a freelancer's application to a project.
type Application struct {
	ID                int64             `json:"id"`
	UserID            int64             `json:"userId"`
	UserName          string            `json:"userName,omitempty"`
	UserEmail         string            `json:"userEmail,omitempty"`
	ProjectID         int64             `json:"projectId"`
	ProjectTitle      string            `json:"projectTitle,omitempty"`
	AssessmentID      *int64            `json:"assessmentId,omitempty"`
	Status            ApplicationStatus `json:"status"`
	SignedAgreementAt *time.Time        `json:"signedAgreementAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}
