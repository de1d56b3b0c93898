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

// CommentRepository handles database operations for post comments
type CommentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var commentColumns = []string{
	"id", "post_id", "user_id", "parent_id", "content",
	"is_hidden", "is_deleted", "created_at", "updated_at",
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID, &c.PostID, &c.UserID, &c.ParentID, &c.Content,
		&c.IsHidden, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query, args, err := r.sb.Insert("comments").
		Columns("post_id", "user_id", "parent_id", "content").
		Values(comment.PostID, comment.UserID, comment.ParentID, comment.Content).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build comment insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("postId", comment.PostID.String()).Msg("Failed to create comment")
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query, args, err := r.sb.Select(commentColumns...).
		From("comments").
		Where(squirrel.Eq{"id": id, "is_deleted": false, "is_hidden": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build comment query: %w", err)
	}

	comment, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		logger.Error().Err(err).Str("commentId", id.String()).Msg("Failed to get comment")
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

// ListByPost returns one page of a post's comments, newest first, paged the
// same way feeds are.
func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID, cur *cursor.Cursor, limit int) ([]*models.Comment, error) {
	q := r.sb.Select(commentColumns...).
		From("comments").
		Where(squirrel.Eq{"post_id": postID, "is_deleted": false, "is_hidden": false})

	q, err := cursor.Apply(q, cur, limit, "created_at", "id")
	if err != nil {
		return nil, err
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build comment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("postId", postID.String()).Msg("Failed to list comments")
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0, limit)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Delete soft-deletes a comment, scoped to its author.
func (r *CommentRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	query, args, err := r.sb.Update("comments").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": commentID, "user_id": userID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build comment delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("commentId", commentID.String()).Msg("Failed to delete comment")
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
