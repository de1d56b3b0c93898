package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         uuid.UUID `json:"id" db:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CollegeID  uuid.UUID `json:"collegeId" db:"college_id"`                            // College the user belongs to
	Email      string    `json:"email" db:"email" example:"user@college.edu"`          // User's email address
	Password   string    `json:"-" db:"password"`                                      // Hashed password (excluded from JSON)
	Phone      string    `json:"phone" db:"phone" example:"+911234567890"`             // User's phone number
	Role       Role      `json:"role" db:"role" example:"STUDENT"`                     // ADMIN, OFFICIALS, ALUMNI or STUDENT
	IsVerified bool      `json:"isVerified" db:"is_verified"`                          // Whether the account passed verification
	IsDeleted  bool      `json:"-" db:"is_deleted"`                                    // Soft-delete flag
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
