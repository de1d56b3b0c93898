package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/authz"
	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/repositories"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
)

// AlumniService handles alumni profile operations.
//
// Creation is role-branched: admins may create a profile for any user,
// officials only for users of their own college, alumni only for themselves.
type AlumniService struct {
	alumniRepo *repositories.AlumniRepository
	userRepo   *repositories.UserRepository
}

func NewAlumniService(alumniRepo *repositories.AlumniRepository, userRepo *repositories.UserRepository) *AlumniService {
	return &AlumniService{
		alumniRepo: alumniRepo,
		userRepo:   userRepo,
	}
}

// Create creates an alumni profile. The target user defaults to the actor;
// an explicit userId in the request is honored only where the policy allows.
func (s *AlumniService) Create(ctx context.Context, actor authz.Actor, req *dto.CreateAlumniRequest) (*models.Alumni, error) {
	targetUserID := actor.ID
	if req.UserID != nil {
		targetUserID = *req.UserID
	}

	target := authz.Target{OwnerID: &targetUserID, CollegeID: req.CollegeID}
	if err := authz.Authorize(actor, authz.ResourceAlumni, authz.ActionCreate, target); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if req.CollegeID != nil && *req.CollegeID != user.CollegeID {
		return nil, apperrors.NewBadRequestError("user does not belong to the given college")
	}
	if user.Role != models.RoleAlumni {
		return nil, apperrors.NewBadRequestError("user is not an alumni account")
	}

	alumni := &models.Alumni{
		UserID:          user.ID,
		GraduationYear:  req.GraduationYear,
		Company:         req.Company,
		Designation:     req.Designation,
		ExperienceYears: req.ExperienceYears,
		ExpertiseAreas:  req.ExpertiseAreas,
		IsAvailable:     req.IsAvailable,
		IDCardURL:       req.IDCardURL,
	}
	if err := s.alumniRepo.Create(ctx, alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// GetMine returns the actor's own alumni profile.
func (s *AlumniService) GetMine(ctx context.Context, actor authz.Actor) (*models.Alumni, error) {
	if err := authz.Authorize(actor, authz.ResourceAlumni, authz.ActionRead, authz.Owner(actor.ID)); err != nil {
		return nil, err
	}
	return s.alumniRepo.GetByUserID(ctx, actor.ID)
}

// List returns an offset-paginated page of alumni across all colleges.
// Admin only.
func (s *AlumniService) List(ctx context.Context, actor authz.Actor, skip, limit int) ([]*models.Alumni, error) {
	if err := authz.Authorize(actor, authz.ResourceAlumni, authz.ActionReadAll, authz.Target{}); err != nil {
		return nil, err
	}
	return s.alumniRepo.List(ctx, skip, limit)
}

// ListByCollege returns an offset-paginated page of a college's alumni.
// Non-admin actors may only list their own college.
func (s *AlumniService) ListByCollege(ctx context.Context, actor authz.Actor, collegeID uuid.UUID, skip, limit int) ([]*models.Alumni, error) {
	if err := authz.Authorize(actor, authz.ResourceAlumni, authz.ActionReadCollege, authz.CollegeOf(collegeID)); err != nil {
		return nil, err
	}
	return s.alumniRepo.ListByCollege(ctx, collegeID, skip, limit)
}

// Update applies a partial update to an alumni profile. Admins and officials
// may name a target user; everyone else updates their own profile.
func (s *AlumniService) Update(ctx context.Context, actor authz.Actor, targetUserID *uuid.UUID, req *dto.UpdateAlumniRequest) (*models.Alumni, error) {
	userID, err := s.resolveTarget(actor, targetUserID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ResourceAlumni, authz.ActionUpdate, authz.Owner(userID)); err != nil {
		return nil, err
	}
	if !req.HasUpdates() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	alumni, err := s.alumniRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.GraduationYear != nil {
		alumni.GraduationYear = *req.GraduationYear
	}
	if req.Company != nil {
		alumni.Company = *req.Company
	}
	if req.Designation != nil {
		alumni.Designation = *req.Designation
	}
	if req.ExperienceYears != nil {
		alumni.ExperienceYears = *req.ExperienceYears
	}
	if req.ExpertiseAreas != nil {
		alumni.ExpertiseAreas = req.ExpertiseAreas
	}
	if req.IsAvailable != nil {
		alumni.IsAvailable = *req.IsAvailable
	}

	if err := s.alumniRepo.Update(ctx, alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// Delete removes an alumni profile, same targeting rules as Update.
func (s *AlumniService) Delete(ctx context.Context, actor authz.Actor, targetUserID *uuid.UUID) error {
	userID, err := s.resolveTarget(actor, targetUserID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ResourceAlumni, authz.ActionDelete, authz.Owner(userID)); err != nil {
		return err
	}
	return s.alumniRepo.Delete(ctx, userID)
}

// resolveTarget maps an optional explicit target user to the effective one.
// Only admins and officials may act on a profile other than their own.
func (s *AlumniService) resolveTarget(actor authz.Actor, targetUserID *uuid.UUID) (uuid.UUID, error) {
	if targetUserID == nil || *targetUserID == actor.ID {
		return actor.ID, nil
	}
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleOfficials {
		return uuid.Nil, apperrors.NewForbiddenError("not authorized to manage another user's alumni profile")
	}
	return *targetUserID, nil
}
