package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/campusbridge/internal/app/authz"
	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/repositories"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
)

// These cases exercise the validation layer of UpdatePost, which runs before
// any repository call, so no database is needed.

func newFeedServiceForValidation() *FeedService {
	return NewFeedService(
		repositories.NewPostRepository(nil),
		repositories.NewCommentRepository(nil),
		repositories.NewReactionRepository(nil),
	)
}

func publisherActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: models.RoleOfficials, CollegeID: uuid.New()}
}

func TestUpdatePostRejectsUnknownPostType(t *testing.T) {
	svc := newFeedServiceForValidation()
	bad := models.PostType("KARAOKE")

	_, err := svc.UpdatePost(context.Background(), publisherActor(), uuid.New(),
		&dto.PostUpdateRequest{PostType: &bad})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdatePostRejectsUnknownVisibility(t *testing.T) {
	svc := newFeedServiceForValidation()
	bad := models.PostVisibility("FRIENDS_ONLY")

	_, err := svc.UpdatePost(context.Background(), publisherActor(), uuid.New(),
		&dto.PostUpdateRequest{Visibility: &bad})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdatePostRejectsEmptyRequest(t *testing.T) {
	svc := newFeedServiceForValidation()

	_, err := svc.UpdatePost(context.Background(), publisherActor(), uuid.New(),
		&dto.PostUpdateRequest{})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdatePostDeniedForStudents(t *testing.T) {
	svc := newFeedServiceForValidation()
	actor := authz.Actor{ID: uuid.New(), Role: models.RoleStudent, CollegeID: uuid.New()}
	content := "edited"

	_, err := svc.UpdatePost(context.Background(), actor, uuid.New(),
		&dto.PostUpdateRequest{Content: &content})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
