package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/campusbridge/internal/app/models"
)

// The author-scoped post queries are what keeps "not yours" indistinguishable
// from "not found": both the lookup and the update must carry the user_id
// condition, so a non-owner's request matches zero rows and surfaces as
// ErrPostNotFound.

func TestPostLookupScopedToAuthor(t *testing.T) {
	r := NewPostRepository(nil)
	postID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	owner := uuid.MustParse("650e8400-e29b-41d4-a716-446655440111")

	query, args, err := r.getByIDForUserQuery(postID, owner)
	require.NoError(t, err)

	require.Contains(t, query, "id = ")
	require.Contains(t, query, "user_id = ")
	require.Contains(t, query, "is_deleted = ")
	require.Contains(t, args, postID.String())
	require.Contains(t, args, owner.String())
}

func TestPostUpdateScopedToAuthor(t *testing.T) {
	r := NewPostRepository(nil)
	post := &models.Post{
		ID:         uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		UserID:     uuid.MustParse("650e8400-e29b-41d4-a716-446655440111"),
		Content:    "updated content",
		PostType:   models.PostTypeEvent,
		Visibility: models.VisibilityPublic,
	}

	query, args, err := r.updateQuery(post)
	require.NoError(t, err)

	require.Contains(t, query, "post_type = ")
	require.Contains(t, query, "visibility = ")
	require.Contains(t, query, "WHERE")
	require.Contains(t, query, "user_id = ")
	require.Contains(t, args, post.ID.String())
	require.Contains(t, args, post.UserID.String())
	require.Contains(t, args, models.PostTypeEvent)
}
