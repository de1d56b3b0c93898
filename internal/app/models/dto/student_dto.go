package dto

import "github.com/campusbridge/campusbridge/internal/app/models"

// Page size bounds for the student listings.
const (
	DefaultStudentLimit = 20
	MaxStudentLimit     = 100
)

// CreateStudentRequest represents the student profile creation payload
type CreateStudentRequest struct {
	FirstName   string        `json:"firstName" binding:"required"`
	MiddleName  *string       `json:"middleName,omitempty"`
	LastName    *string       `json:"lastName,omitempty"`
	RollNumber  string        `json:"rollNumber" binding:"required" example:"CS21B042"`
	Branch      models.Branch `json:"branch" binding:"required" example:"CSE"`
	YearOfStudy int           `json:"yearOfStudy" binding:"required,min=1,max=6"`
	Interests   []string      `json:"interests"`
	IDCardURL   string        `json:"idCardUrl" binding:"required"`
}

// UpdateStudentRequest represents a partial student profile update
type UpdateStudentRequest struct {
	FirstName   *string        `json:"firstName,omitempty"`
	MiddleName  *string        `json:"middleName,omitempty"`
	LastName    *string        `json:"lastName,omitempty"`
	RollNumber  *string        `json:"rollNumber,omitempty"`
	Branch      *models.Branch `json:"branch,omitempty"`
	YearOfStudy *int           `json:"yearOfStudy,omitempty"`
	Interests   []string       `json:"interests,omitempty"`
}

// HasUpdates reports whether any field was provided
func (r *UpdateStudentRequest) HasUpdates() bool {
	return r.FirstName != nil || r.MiddleName != nil || r.LastName != nil ||
		r.RollNumber != nil || r.Branch != nil || r.YearOfStudy != nil || r.Interests != nil
}
