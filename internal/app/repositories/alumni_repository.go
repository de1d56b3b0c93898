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

// AlumniRepository handles database operations for alumni profiles
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var alumniColumns = []string{
	"id", "user_id", "graduation_year", "company", "designation", "experience_years",
	"expertise_areas", "is_available", "id_card_url", "is_verified", "created_at", "updated_at",
}

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	var a models.Alumni
	err := row.Scan(
		&a.ID, &a.UserID, &a.GraduationYear, &a.Company, &a.Designation, &a.ExperienceYears,
		&a.ExpertiseAreas, &a.IsAvailable, &a.IDCardURL, &a.IsVerified, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AlumniRepository) Create(ctx context.Context, alumni *models.Alumni) error {
	query, args, err := r.sb.Insert("alumni").
		Columns("user_id", "graduation_year", "company", "designation", "experience_years",
			"expertise_areas", "is_available", "id_card_url", "is_verified").
		Values(alumni.UserID, alumni.GraduationYear, alumni.Company, alumni.Designation, alumni.ExperienceYears,
			alumni.ExpertiseAreas, alumni.IsAvailable, alumni.IDCardURL, alumni.IsVerified).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build alumni insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&alumni.ID, &alumni.CreatedAt, &alumni.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err, "alumni_user_id_key") {
			return apperrors.ErrAlumniAlreadyExists
		}
		logger.Error().Err(err).Str("userId", alumni.UserID.String()).Msg("Failed to create alumni profile")
		return fmt.Errorf("failed to create alumni profile: %w", err)
	}
	return nil
}

func (r *AlumniRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Alumni, error) {
	query, args, err := r.sb.Select(alumniColumns...).
		From("alumni").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build alumni query: %w", err)
	}

	alumni, err := scanAlumni(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Str("userId", userID.String()).Msg("Failed to get alumni profile")
		return nil, fmt.Errorf("failed to get alumni profile: %w", err)
	}
	return alumni, nil
}

// List returns offset-paginated alumni across all colleges, newest profile
// first, with the owning user of each.
func (r *AlumniRepository) List(ctx context.Context, skip, limit int) ([]*models.Alumni, error) {
	query, args, err := r.alumniWithUserSelect().
		OrderBy("a.created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build alumni list query: %w", err)
	}
	return r.queryAlumniRows(ctx, query, args)
}

// ListByCollege returns offset-paginated alumni of one college along with the
// owning user of each profile. Historical pages here may shift under writes;
// the alumni directory accepts that, unlike the feed.
func (r *AlumniRepository) ListByCollege(ctx context.Context, collegeID uuid.UUID, skip, limit int) ([]*models.Alumni, error) {
	query, args, err := r.alumniWithUserSelect().
		Where(squirrel.Eq{"u.college_id": collegeID}).
		OrderBy("a.graduation_year DESC", "a.created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build alumni list query: %w", err)
	}
	return r.queryAlumniRows(ctx, query, args)
}

func (r *AlumniRepository) alumniWithUserSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.id", "a.user_id", "a.graduation_year", "a.company", "a.designation", "a.experience_years",
		"a.expertise_areas", "a.is_available", "a.id_card_url", "a.is_verified", "a.created_at", "a.updated_at",
		"u.id", "u.college_id", "u.email", "u.phone", "u.role", "u.is_verified", "u.created_at", "u.updated_at").
		From("alumni a").
		Join("users u ON u.id = a.user_id").
		Where(squirrel.Eq{"u.is_deleted": false})
}

func (r *AlumniRepository) queryAlumniRows(ctx context.Context, query string, args []interface{}) ([]*models.Alumni, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list alumni")
		return nil, fmt.Errorf("failed to list alumni: %w", err)
	}
	defer rows.Close()

	results := make([]*models.Alumni, 0)
	for rows.Next() {
		var a models.Alumni
		var u models.User
		err := rows.Scan(
			&a.ID, &a.UserID, &a.GraduationYear, &a.Company, &a.Designation, &a.ExperienceYears,
			&a.ExpertiseAreas, &a.IsAvailable, &a.IDCardURL, &a.IsVerified, &a.CreatedAt, &a.UpdatedAt,
			&u.ID, &u.CollegeID, &u.Email, &u.Phone, &u.Role, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alumni row: %w", err)
		}
		a.User = &u
		results = append(results, &a)
	}
	return results, rows.Err()
}

func (r *AlumniRepository) Update(ctx context.Context, alumni *models.Alumni) error {
	query, args, err := r.sb.Update("alumni").
		Set("graduation_year", alumni.GraduationYear).
		Set("company", alumni.Company).
		Set("designation", alumni.Designation).
		Set("experience_years", alumni.ExperienceYears).
		Set("expertise_areas", alumni.ExpertiseAreas).
		Set("is_available", alumni.IsAvailable).
		Set("id_card_url", alumni.IDCardURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": alumni.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build alumni update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("userId", alumni.UserID.String()).Msg("Failed to update alumni profile")
		return fmt.Errorf("failed to update alumni profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlumniNotFound
	}
	return nil
}

// Delete removes an alumni profile by owning user.
func (r *AlumniRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query, args, err := r.sb.Delete("alumni").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build alumni delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("userId", userID.String()).Msg("Failed to delete alumni profile")
		return fmt.Errorf("failed to delete alumni profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlumniNotFound
	}
	return nil
}
