package dto

import "github.com/google/uuid"

// Offset pagination bounds for the alumni directory
const (
	DefaultAlumniLimit = 20
	MaxAlumniLimit     = 100
)

// CreateAlumniRequest represents the alumni profile creation payload.
// UserID defaults to the acting user; CollegeID defaults to the acting
// user's college. Both are subject to the per-role authorization rules.
type CreateAlumniRequest struct {
	UserID          *uuid.UUID `json:"userId,omitempty"`
	CollegeID       *uuid.UUID `json:"collegeId,omitempty"`
	GraduationYear  int        `json:"graduationYear" binding:"required" example:"2019"`
	Company         string     `json:"company" binding:"required"`
	Designation     string     `json:"designation" binding:"required"`
	ExperienceYears int        `json:"experienceYears" binding:"min=0"`
	ExpertiseAreas  []string   `json:"expertiseAreas"`
	IsAvailable     bool       `json:"isAvailable"`
	IDCardURL       string     `json:"idCardUrl" binding:"required"`
}

// UpdateAlumniRequest represents a partial alumni profile update
type UpdateAlumniRequest struct {
	GraduationYear  *int     `json:"graduationYear,omitempty"`
	Company         *string  `json:"company,omitempty"`
	Designation     *string  `json:"designation,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty"`
	ExpertiseAreas  []string `json:"expertiseAreas,omitempty"`
	IsAvailable     *bool    `json:"isAvailable,omitempty"`
}

// HasUpdates reports whether any field was provided
func (r *UpdateAlumniRequest) HasUpdates() bool {
	return r.GraduationYear != nil || r.Company != nil || r.Designation != nil ||
		r.ExperienceYears != nil || r.ExpertiseAreas != nil || r.IsAvailable != nil
}
