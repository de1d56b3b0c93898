package dto

import (
	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/models"
)

// RegisterRequest represents the user registration payload
type RegisterRequest struct {
	CollegeID uuid.UUID   `json:"collegeId" binding:"required"`
	Email     string      `json:"email" binding:"required,email" example:"user@college.edu"`
	Password  string      `json:"password" binding:"required,min=8" example:"s3cretPass!"`
	Phone     string      `json:"phone" binding:"required" example:"+911234567890"`
	Role      models.Role `json:"role" binding:"required" example:"STUDENT"`
}

// RegisterResponse carries the identifier of the newly created user
type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
