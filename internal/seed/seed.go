package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/repositories"
	"github.com/campusbridge/campusbridge/internal/config"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/auth"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

const defaultCollegeName = "CampusBridge Default College"

// CreateDefaultData ensures a default college and a verified admin account
// exist so the platform is usable immediately after first start. The admin
// credentials come from configuration; without them the admin seed is skipped.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	collegeRepo := repositories.NewCollegeRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	college, err := findOrCreateDefaultCollege(ctx, collegeRepo)
	if err != nil {
		return err
	}

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logger.Info().Msg("Admin seed credentials not configured, skipping admin seed")
		return nil
	}

	_, err = userRepo.GetByEmail(ctx, cfg.Seed.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		CollegeID:  college.ID,
		Email:      cfg.Seed.AdminEmail,
		Password:   hashed,
		Phone:      "+910000000000",
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", cfg.Seed.AdminEmail).Msg("Seeded admin account")
	return nil
}

func findOrCreateDefaultCollege(ctx context.Context, collegeRepo *repositories.CollegeRepository) (*models.College, error) {
	colleges, err := collegeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range colleges {
		if c.Name == defaultCollegeName {
			return c, nil
		}
	}

	college := &models.College{
		Name:         defaultCollegeName,
		IsGovernment: false,
		State:        "Maharashtra",
		City:         "Nagpur",
	}
	if err := collegeRepo.CreateBatch(ctx, []*models.College{college}); err != nil {
		return nil, err
	}

	logger.Info().Str("collegeId", college.ID.String()).Msg("Seeded default college")
	return college, nil
}
