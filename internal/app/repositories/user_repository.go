package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isDuplicateKeyError reports whether err is a unique constraint violation,
// optionally matching a specific constraint name.
func isDuplicateKeyError(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

var userColumns = []string{
	"id", "college_id", "email", "password", "phone", "role",
	"is_verified", "is_deleted", "created_at", "updated_at",
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.CollegeID, &u.Email, &u.Password, &u.Phone, &u.Role,
		&u.IsVerified, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and fills in the generated identifier and timestamps.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query, args, err := r.sb.Insert("users").
		Columns("college_id", "email", "password", "phone", "role", "is_verified").
		Values(user.CollegeID, user.Email, user.Password, user.Phone, user.Role, user.IsVerified).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "users_phone_key") {
			return apperrors.ErrPhoneAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userId", id.String()).Msg("Failed to get user by id")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Failed to get user by email")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListByCollege returns offset-paginated users of a college, optionally
// filtered by role.
func (r *UserRepository) ListByCollege(ctx context.Context, collegeID uuid.UUID, role *models.Role, skip, limit int) ([]*models.User, error) {
	q := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"college_id": collegeID, "is_deleted": false}).
		OrderBy("created_at DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit))
	if role != nil {
		q = q.Where(squirrel.Eq{"role": *role})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("collegeId", collegeID.String()).Msg("Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update applies changed profile fields. Email, role and college are immutable here.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query, args, err := r.sb.Update("users").
		Set("phone", user.Phone).
		Set("is_verified", user.IsVerified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isDuplicateKeyError(err, "users_phone_key") {
			return apperrors.ErrPhoneAlreadyExists
		}
		logger.Error().Err(err).Str("userId", user.ID.String()).Msg("Failed to update user")
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete soft-deletes a user.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.sb.Update("users").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("userId", id.String()).Msg("Failed to delete user")
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
