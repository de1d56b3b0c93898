package models

import (
	"time"

	"github.com/google/uuid"
)

// College defines the college model based on the 'colleges' table
type College struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" example:"National Institute of Technology"`
	IsGovernment bool      `json:"isGovernment" db:"is_government"` // Government vs private institution
	State        string    `json:"state" db:"state" example:"Maharashtra"`
	City         string    `json:"city" db:"city" example:"Nagpur"`
	IsDeleted    bool      `json:"-" db:"is_deleted"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
