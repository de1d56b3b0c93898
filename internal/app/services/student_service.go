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

// StudentService handles student profile operations. Profiles belong to the
// acting user; cross-user access is limited to the listing endpoints.
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) Create(ctx context.Context, actor authz.Actor, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := authz.Authorize(actor, authz.ResourceStudent, authz.ActionCreate, authz.Owner(actor.ID)); err != nil {
		return nil, err
	}
	if !req.Branch.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown branch: " + string(req.Branch))
	}

	student := &models.Student{
		UserID:      actor.ID,
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		RollNumber:  req.RollNumber,
		Branch:      req.Branch,
		YearOfStudy: req.YearOfStudy,
		Interests:   req.Interests,
		IDCardURL:   req.IDCardURL,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetMine returns the actor's own student profile.
func (s *StudentService) GetMine(ctx context.Context, actor authz.Actor) (*models.Student, error) {
	if err := authz.Authorize(actor, authz.ResourceStudent, authz.ActionRead, authz.Owner(actor.ID)); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByUserID(ctx, actor.ID)
}

// List returns an offset-paginated page of student profiles across all
// colleges. Admin only.
func (s *StudentService) List(ctx context.Context, actor authz.Actor, skip, limit int) ([]*models.Student, error) {
	if err := authz.Authorize(actor, authz.ResourceStudent, authz.ActionReadAll, authz.Target{}); err != nil {
		return nil, err
	}
	return s.studentRepo.List(ctx, skip, limit)
}

// ListByCollege returns an offset-paginated page of a college's students.
// Non-admin actors may only list their own college.
func (s *StudentService) ListByCollege(ctx context.Context, actor authz.Actor, collegeID uuid.UUID, skip, limit int) ([]*models.Student, error) {
	if err := authz.Authorize(actor, authz.ResourceStudent, authz.ActionReadCollege, authz.CollegeOf(collegeID)); err != nil {
		return nil, err
	}
	return s.studentRepo.ListByCollege(ctx, collegeID, skip, limit)
}

func (s *StudentService) Update(ctx context.Context, actor authz.Actor, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := authz.Authorize(actor, authz.ResourceStudent, authz.ActionUpdate, authz.Owner(actor.ID)); err != nil {
		return nil, err
	}
	if !req.HasUpdates() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}
	if req.Branch != nil && !req.Branch.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown branch: " + string(*req.Branch))
	}

	student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		student.MiddleName = req.MiddleName
	}
	if req.LastName != nil {
		student.LastName = req.LastName
	}
	if req.RollNumber != nil {
		student.RollNumber = *req.RollNumber
	}
	if req.Branch != nil {
		student.Branch = *req.Branch
	}
	if req.YearOfStudy != nil {
		student.YearOfStudy = *req.YearOfStudy
	}
	if req.Interests != nil {
		student.Interests = req.Interests
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, actor authz.Actor) error {
	if err := authz.Authorize(actor, authz.ResourceStudent, authz.ActionDelete, authz.Owner(actor.ID)); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, actor.ID)
}
