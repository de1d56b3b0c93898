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
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var collegeColumns = []string{
	"id", "name", "is_government", "state", "city", "is_deleted", "created_at", "updated_at",
}

func scanCollege(row pgx.Row) (*models.College, error) {
	var c models.College
	err := row.Scan(
		&c.ID, &c.Name, &c.IsGovernment, &c.State, &c.City,
		&c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateBatch inserts the given colleges in a single transaction. Either all
// rows are written or none are.
func (r *CollegeRepository) CreateBatch(ctx context.Context, colleges []*models.College) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, college := range colleges {
		query, args, err := r.sb.Insert("colleges").
			Columns("name", "is_government", "state", "city").
			Values(college.Name, college.IsGovernment, college.State, college.City).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build college insert query: %w", err)
		}

		err = tx.QueryRow(ctx, query, args...).Scan(&college.ID, &college.CreatedAt, &college.UpdatedAt)
		if err != nil {
			logger.Error().Err(err).Str("name", college.Name).Msg("Failed to create college")
			return fmt.Errorf("failed to create college: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit college batch: %w", err)
	}
	return nil
}

func (r *CollegeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.College, error) {
	query, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build college query: %w", err)
	}

	college, err := scanCollege(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Str("collegeId", id.String()).Msg("Failed to get college")
		return nil, fmt.Errorf("failed to get college: %w", err)
	}
	return college, nil
}

// List returns all live colleges ordered by name.
func (r *CollegeRepository) List(ctx context.Context) ([]*models.College, error) {
	query, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build college list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list colleges")
		return nil, fmt.Errorf("failed to list colleges: %w", err)
	}
	defer rows.Close()

	colleges := make([]*models.College, 0)
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan college: %w", err)
		}
		colleges = append(colleges, college)
	}
	return colleges, rows.Err()
}

func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	query, args, err := r.sb.Update("colleges").
		Set("name", college.Name).
		Set("is_government", college.IsGovernment).
		Set("state", college.State).
		Set("city", college.City).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": college.ID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build college update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("collegeId", college.ID.String()).Msg("Failed to update college")
		return fmt.Errorf("failed to update college: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}
	return nil
}

// Delete soft-deletes a college.
func (r *CollegeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Update("colleges").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build college delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("collegeId", id.String()).Msg("Failed to delete college")
		return fmt.Errorf("failed to delete college: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}
	return nil
}
