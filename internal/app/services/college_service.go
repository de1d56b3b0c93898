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

// CollegeService handles college management, an administrative surface.
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
}

func NewCollegeService(collegeRepo *repositories.CollegeRepository) *CollegeService {
	return &CollegeService{collegeRepo: collegeRepo}
}

// CreateBatch creates the requested colleges atomically.
func (s *CollegeService) CreateBatch(ctx context.Context, actor authz.Actor, reqs []dto.CreateCollegeRequest) ([]*models.College, error) {
	if err := authz.Authorize(actor, authz.ResourceCollege, authz.ActionCreate, authz.Target{}); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, apperrors.NewBadRequestError("at least one college is required")
	}

	colleges := make([]*models.College, 0, len(reqs))
	for _, req := range reqs {
		colleges = append(colleges, &models.College{
			Name:         req.Name,
			IsGovernment: req.IsGovernment,
			State:        req.State,
			City:         req.City,
		})
	}

	if err := s.collegeRepo.CreateBatch(ctx, colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

func (s *CollegeService) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*models.College, error) {
	if err := authz.Authorize(actor, authz.ResourceCollege, authz.ActionRead, authz.Target{}); err != nil {
		return nil, err
	}
	return s.collegeRepo.GetByID(ctx, id)
}

func (s *CollegeService) List(ctx context.Context, actor authz.Actor) ([]*models.College, error) {
	if err := authz.Authorize(actor, authz.ResourceCollege, authz.ActionReadAll, authz.Target{}); err != nil {
		return nil, err
	}
	return s.collegeRepo.List(ctx)
}

func (s *CollegeService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req *dto.CollegeUpdateRequest) (*models.College, error) {
	if err := authz.Authorize(actor, authz.ResourceCollege, authz.ActionUpdate, authz.Target{}); err != nil {
		return nil, err
	}
	if !req.HasUpdates() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		college.Name = *req.Name
	}
	if req.IsGovernment != nil {
		college.IsGovernment = *req.IsGovernment
	}
	if req.State != nil {
		college.State = *req.State
	}
	if req.City != nil {
		college.City = *req.City
	}

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

func (s *CollegeService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.Authorize(actor, authz.ResourceCollege, authz.ActionDelete, authz.Target{}); err != nil {
		return err
	}
	return s.collegeRepo.Delete(ctx, id)
}
