package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// ReactionRepository handles database operations for post reactions
type ReactionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewReactionRepository(db *pgxpool.Pool) *ReactionRepository {
	return &ReactionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert records a user's reaction to a post. Reacting again replaces the
// previous reaction, one row per (post, user).
func (r *ReactionRepository) Upsert(ctx context.Context, reaction *models.PostReaction) error {
	query, args, err := r.sb.Insert("post_reactions").
		Columns("post_id", "user_id", "reaction").
		Values(reaction.PostID, reaction.UserID, reaction.Reaction).
		Suffix("ON CONFLICT (post_id, user_id) DO UPDATE SET reaction = EXCLUDED.reaction, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build reaction upsert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&reaction.ID, &reaction.CreatedAt, &reaction.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("postId", reaction.PostID.String()).Msg("Failed to upsert reaction")
		return fmt.Errorf("failed to save reaction: %w", err)
	}
	return nil
}

// Delete removes a user's reaction from a post.
func (r *ReactionRepository) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	query, args, err := r.sb.Delete("post_reactions").
		Where(squirrel.Eq{"post_id": postID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build reaction delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("postId", postID.String()).Msg("Failed to delete reaction")
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// CountByPost returns reaction totals for a post grouped by reaction type.
func (r *ReactionRepository) CountByPost(ctx context.Context, postID uuid.UUID) (map[models.ReactionType]int, error) {
	query, args, err := r.sb.Select("reaction", "COUNT(*)").
		From("post_reactions").
		Where(squirrel.Eq{"post_id": postID}).
		GroupBy("reaction").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reaction count query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("postId", postID.String()).Msg("Failed to count reactions")
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ReactionType]int)
	for rows.Next() {
		var reaction models.ReactionType
		var count int
		if err := rows.Scan(&reaction, &count); err != nil {
			return nil, fmt.Errorf("failed to scan reaction count: %w", err)
		}
		counts[reaction] = count
	}
	return counts, rows.Err()
}
