package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/authz"
	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/repositories"
)

// UserService handles user account operations
type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID returns a user account. Non-admin callers may only read their own.
func (s *UserService) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*models.User, error) {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionRead, authz.Owner(id)); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

// List returns offset-paginated user accounts in a college, optionally
// filtered by role. Admin only.
func (s *UserService) List(ctx context.Context, actor authz.Actor, collegeID uuid.UUID, role *models.Role, skip, limit int) ([]*models.User, error) {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionList, authz.Target{}); err != nil {
		return nil, err
	}
	return s.userRepo.ListByCollege(ctx, collegeID, role, skip, limit)
}

// Update applies an administrative partial update to a user account.
func (s *UserService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req *dto.UserUpdateRequest) (*models.User, error) {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionUpdate, authz.Target{}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes a user account. Admin only.
func (s *UserService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionDelete, authz.Target{}); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
