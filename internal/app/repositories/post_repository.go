package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/cursor"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// PostRepository handles database operations for feed posts.
//
// Feed listings are keyset-paginated on (created_at DESC, id DESC); the
// cursor package owns the predicate so every feed pages identically.
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var postColumns = []string{
	"id", "user_id", "college_id", "content", "post_type", "visibility",
	"is_hidden", "is_deleted", "metadata", "created_at", "updated_at",
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.UserID, &p.CollegeID, &p.Content, &p.PostType, &p.Visibility,
		&p.IsHidden, &p.IsDeleted, &p.Metadata, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query, args, err := r.sb.Insert("posts").
		Columns("user_id", "college_id", "content", "post_type", "visibility", "metadata").
		Values(post.UserID, post.CollegeID, post.Content, post.PostType, post.Visibility, post.Metadata).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("userId", post.UserID.String()).Msg("Failed to create post")
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID fetches a visible post by identifier.
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query, args, err := r.sb.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"id": id, "is_deleted": false, "is_hidden": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build post query: %w", err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Str("postId", id.String()).Msg("Failed to get post")
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// GetByIDForUser fetches a post scoped to its author. A post owned by someone
// else is indistinguishable from a missing one: both return ErrPostNotFound,
// so callers never learn whether a foreign post exists.
func (r *PostRepository) GetByIDForUser(ctx context.Context, postID, userID uuid.UUID) (*models.Post, error) {
	query, args, err := r.getByIDForUserQuery(postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build post query: %w", err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Str("postId", postID.String()).Msg("Failed to get post for user")
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) getByIDForUserQuery(postID, userID uuid.UUID) (string, []interface{}, error) {
	return r.sb.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"id": postID, "user_id": userID, "is_deleted": false}).
		ToSql()
}

// ListCollegeFeed returns one page of a college's feed, newest first.
func (r *PostRepository) ListCollegeFeed(ctx context.Context, collegeID uuid.UUID, cur *cursor.Cursor, limit int) ([]*models.Post, error) {
	q := r.sb.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"college_id": collegeID, "is_deleted": false, "is_hidden": false})
	return r.listPage(ctx, q, cur, limit)
}

// ListPublicFeed returns one page of the cross-college public feed.
func (r *PostRepository) ListPublicFeed(ctx context.Context, cur *cursor.Cursor, limit int) ([]*models.Post, error) {
	q := r.sb.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"visibility": models.VisibilityPublic, "is_deleted": false, "is_hidden": false})
	return r.listPage(ctx, q, cur, limit)
}

// ListByUser returns one page of a single author's posts, hidden ones included
// so authors can still see moderated content of their own.
func (r *PostRepository) ListByUser(ctx context.Context, userID uuid.UUID, cur *cursor.Cursor, limit int) ([]*models.Post, error) {
	q := r.sb.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false})
	return r.listPage(ctx, q, cur, limit)
}

func (r *PostRepository) listPage(ctx context.Context, q squirrel.SelectBuilder, cur *cursor.Cursor, limit int) ([]*models.Post, error) {
	q, err := cursor.Apply(q, cur, limit, "created_at", "id")
	if err != nil {
		return nil, err
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build feed query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to query feed page")
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.Post, 0, limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update rewrites mutable post fields. The write stays scoped to the author
// so a lost ownership race surfaces as ErrPostNotFound.
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	query, args, err := r.updateQuery(post)
	if err != nil {
		return fmt.Errorf("failed to build post update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("postId", post.ID.String()).Msg("Failed to update post")
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) updateQuery(post *models.Post) (string, []interface{}, error) {
	return r.sb.Update("posts").
		Set("content", post.Content).
		Set("post_type", post.PostType).
		Set("visibility", post.Visibility).
		Set("metadata", post.Metadata).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID, "user_id": post.UserID, "is_deleted": false}).
		ToSql()
}

// Delete soft-deletes a post, scoped to its author.
func (r *PostRepository) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	query, args, err := r.sb.Update("posts").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": postID, "user_id": userID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("postId", postID.String()).Msg("Failed to delete post")
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}
