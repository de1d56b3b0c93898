package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student profile model based on the 'students' table
type Student struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"` // Owning user, unique per user
	FirstName   string    `json:"firstName" db:"first_name" example:"Asha"`
	MiddleName  *string   `json:"middleName,omitempty" db:"middle_name"` // Pointer for potential NULL
	LastName    *string   `json:"lastName,omitempty" db:"last_name"`
	RollNumber  string    `json:"rollNumber" db:"roll_number" example:"CS21B042"`
	Branch      Branch    `json:"branch" db:"branch" example:"CSE"`
	YearOfStudy int       `json:"yearOfStudy" db:"year_of_study" example:"3"`
	Interests   []string  `json:"interests" db:"interests"`
	IDCardURL   string    `json:"idCardUrl" db:"id_card_url"`
	IsVerified  bool      `json:"isVerified" db:"is_verified"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
