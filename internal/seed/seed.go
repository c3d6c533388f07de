package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/app/repositories"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
	pkgauth "github.com/osmandemir/learnsphere/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@learnsphere.local"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData seeds the default admin account. Registration only
// ever produces students, so without this seed no admin could exist.
// The operation is idempotent: an already present admin is left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Debug().Str("email", defaultAdminEmail).Msg("Default admin already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := pkgauth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:     defaultAdminEmail,
		Password:  hashed,
		FirstName: "Platform",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil {
		// Lost a race with a concurrent seeder; the admin exists either way.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("userId", id).Str("email", defaultAdminEmail).
		Msg("Default admin account created; change its password after first login")
	return nil
}
