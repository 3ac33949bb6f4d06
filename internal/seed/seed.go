package seed

import (
	"context"
	"errors"
	"time"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/config"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/auth"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

// CreateDefaultData provisions the initial admin account and starter
// content. It works against the repository interfaces so both the
// postgres and the memory backends are seedable. Safe to run on every
// startup.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, cfg *config.Config) error {
	var finalErr error

	if err := createDefaultAdmin(ctx, repos.Admin, cfg); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := createStarterContent(ctx, repos); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

// createDefaultAdmin creates the bootstrap admin account when no
// accounts exist yet. Credentials come from configuration.
func createDefaultAdmin(ctx context.Context, adminRepo repositories.AdminUserRepository, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn().Msg("No default admin credentials configured, skipping admin seed")
		return nil
	}

	count, err := adminRepo.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting admin users")
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	_, err = adminRepo.Create(ctx, &models.AdminUser{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		logger.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	logger.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}

// createStarterContent adds a welcome article and the central office
// unit so a fresh install does not render empty pages.
func createStarterContent(ctx context.Context, repos *repositories.Repositories) error {
	var finalErr error

	news, err := repos.News.List(ctx, repositories.ListOptions{})
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	} else if len(news) == 0 {
		_, err := repos.News.Create(ctx, &models.NewsArticle{
			Title:       "Welcome to the student union website",
			Content:     "<p>News from the union will appear here.</p>",
			IsImportant: true,
			PublishedAt: time.Now().UTC(),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Error creating starter news article")
			finalErr = errors.Join(finalErr, err)
		}
	}

	units, err := repos.Unit.List(ctx, repositories.ListOptions{})
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	} else if len(units) == 0 {
		now := time.Now().UTC()
		_, err := repos.Unit.Create(ctx, &models.Unit{
			Name:      "Central Office",
			Content:   "<p>The central office of the student union.</p>",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			logger.Error().Err(err).Msg("Error creating starter unit")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
