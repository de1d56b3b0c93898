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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"id", "user_id", "first_name", "middle_name", "last_name", "roll_number",
	"branch", "year_of_study", "interests", "id_card_url", "is_verified", "created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.UserID, &s.FirstName, &s.MiddleName, &s.LastName, &s.RollNumber,
		&s.Branch, &s.YearOfStudy, &s.Interests, &s.IDCardURL, &s.IsVerified, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("user_id", "first_name", "middle_name", "last_name", "roll_number",
			"branch", "year_of_study", "interests", "id_card_url", "is_verified").
		Values(student.UserID, student.FirstName, student.MiddleName, student.LastName, student.RollNumber,
			student.Branch, student.YearOfStudy, student.Interests, student.IDCardURL, student.IsVerified).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err, "students_user_id_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		if isDuplicateKeyError(err, "students_roll_number_key") {
			return apperrors.ErrRollNumberAlreadyUsed
		}
		logger.Error().Err(err).Str("userId", student.UserID.String()).Msg("Failed to create student profile")
		return fmt.Errorf("failed to create student profile: %w", err)
	}
	return nil
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("userId", userID.String()).Msg("Failed to get student profile")
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}
	return student, nil
}

// List returns offset-paginated student profiles across all colleges, newest
// first.
func (r *StudentRepository) List(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	query, args, err := r.studentWithUserSelect().
		OrderBy("s.created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}
	return r.queryStudentRows(ctx, query, args)
}

// ListByCollege returns offset-paginated student profiles whose owning user
// belongs to the given college.
func (r *StudentRepository) ListByCollege(ctx context.Context, collegeID uuid.UUID, skip, limit int) ([]*models.Student, error) {
	query, args, err := r.studentWithUserSelect().
		Where(squirrel.Eq{"u.college_id": collegeID}).
		OrderBy("s.created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}
	return r.queryStudentRows(ctx, query, args)
}

func (r *StudentRepository) studentWithUserSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.user_id", "s.first_name", "s.middle_name", "s.last_name", "s.roll_number",
		"s.branch", "s.year_of_study", "s.interests", "s.id_card_url", "s.is_verified", "s.created_at", "s.updated_at",
		"u.id", "u.college_id", "u.email", "u.phone", "u.role", "u.is_verified", "u.created_at", "u.updated_at").
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"u.is_deleted": false})
}

func (r *StudentRepository) queryStudentRows(ctx context.Context, query string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list students")
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	results := make([]*models.Student, 0)
	for rows.Next() {
		var s models.Student
		var u models.User
		err := rows.Scan(
			&s.ID, &s.UserID, &s.FirstName, &s.MiddleName, &s.LastName, &s.RollNumber,
			&s.Branch, &s.YearOfStudy, &s.Interests, &s.IDCardURL, &s.IsVerified, &s.CreatedAt, &s.UpdatedAt,
			&u.ID, &u.CollegeID, &u.Email, &u.Phone, &u.Role, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		s.User = &u
		results = append(results, &s)
	}
	return results, rows.Err()
}

func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("middle_name", student.MiddleName).
		Set("last_name", student.LastName).
		Set("roll_number", student.RollNumber).
		Set("branch", student.Branch).
		Set("year_of_study", student.YearOfStudy).
		Set("interests", student.Interests).
		Set("id_card_url", student.IDCardURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": student.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isDuplicateKeyError(err, "students_roll_number_key") {
			return apperrors.ErrRollNumberAlreadyUsed
		}
		logger.Error().Err(err).Str("userId", student.UserID.String()).Msg("Failed to update student profile")
		return fmt.Errorf("failed to update student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student profile by owning user.
func (r *StudentRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("userId", userID.String()).Msg("Failed to delete student profile")
		return fmt.Errorf("failed to delete student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
