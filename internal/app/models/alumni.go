package models

import (
	"time"

	"github.com/google/uuid"
)

// Alumni defines the alumni profile model based on the 'alumni' table
type Alumni struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"userId" db:"user_id"` // Owning user, unique per user
	GraduationYear  int       `json:"graduationYear" db:"graduation_year" example:"2019"`
	Company         string    `json:"company" db:"company" example:"Acme Corp"`
	Designation     string    `json:"designation" db:"designation" example:"Senior Engineer"`
	ExperienceYears int       `json:"experienceYears" db:"experience_years" example:"6"`
	ExpertiseAreas  []string  `json:"expertiseAreas" db:"expertise_areas"`
	IsAvailable     bool      `json:"isAvailable" db:"is_available"` // Open to mentorship/contact
	IDCardURL       string    `json:"idCardUrl" db:"id_card_url"`
	IsVerified      bool      `json:"isVerified" db:"is_verified"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
