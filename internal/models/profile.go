package models

import "time"

// VerificationStatus values for a freelancer profile.
type VerificationStatus string

const (
	Unverified           VerificationStatus = "UNVERIFIED"
	VerificationPending  VerificationStatus = "PENDING"
	Verified             VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// Skill is a self-reported skill with years of experience.
type Skill struct {
	Name  string `json:"name" validate:"required"`
	Years int    `json:"years" validate:"gte=0"`
}

// Education is one entry in a profile's education history.
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree,omitempty"`
	Year        int    `json:"year,omitempty" validate:"omitempty,gte=1950"`
}

// Document is an uploaded verification document reference. The file
// itself lives in backend storage; the client only sees metadata.
type Document struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FreelancerProfile is the current user's marketplace profile.
type FreelancerProfile struct {
	UserID             int64              `json:"userId"`
	Name               string             `json:"name,omitempty"`
	Email              string             `json:"email,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	DateOfBirth        *time.Time         `json:"dateOfBirth,omitempty"`
	Address            string             `json:"address,omitempty"`
	Skills             []Skill            `json:"skills"`
	Education          []Education        `json:"education"`
	Documents          []Document         `json:"documents"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	Rating             *float64           `json:"rating,omitempty"`
	Completed          bool               `json:"completed"`
}

// ProfileUpdateRequest is the body for PUT /profile.
type ProfileUpdateRequest struct {
	Phone       string      `json:"phone,omitempty" validate:"omitempty,e164"`
	DateOfBirth *time.Time  `json:"dateOfBirth,omitempty"`
	Address     string      `json:"address,omitempty"`
	Skills      []Skill     `json:"skills" validate:"dive"`
	Education   []Education `json:"education" validate:"dive"`
	Documents   []Document  `json:"documents"`
}
