package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/repositories"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/auth"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// AuthService handles registration and credential verification
type AuthService struct {
	userRepo    *repositories.UserRepository
	collegeRepo *repositories.CollegeRepository
	jwtService  *auth.JWTService
}

func NewAuthService(userRepo *repositories.UserRepository, collegeRepo *repositories.CollegeRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		collegeRepo: collegeRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new unverified account. The college must exist and the
// requested role must be one of the known roles. Accounts stay locked out of
// login until an administrator marks them verified.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role: %s", req.Role))
	}

	if _, err := s.collegeRepo.GetByID(ctx, req.CollegeID); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		CollegeID:  req.CollegeID,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		Phone:      strings.TrimSpace(req.Phone),
		Role:       req.Role,
		IsVerified: false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("userId", user.ID.String()).Str("role", string(user.Role)).Msg("User registered")
	return &dto.RegisterResponse{UserID: user.ID}, nil
}

// Login verifies credentials and issues an access token. A wrong email and a
// wrong password produce the same error so the response does not reveal which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error().Err(err).Str("userId", user.ID.String()).Msg("Failed to generate token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
