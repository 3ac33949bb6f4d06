package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

// PostgresAdminUserRepository handles admin account database operations.
type PostgresAdminUserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminUserRepository creates a postgres-backed AdminUserRepository.
func NewAdminUserRepository(db *pgxpool.Pool) *PostgresAdminUserRepository {
	return &PostgresAdminUserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an admin account.
func (r *PostgresAdminUserRepository) Create(ctx context.Context, user *models.AdminUser) (int64, error) {
	sql, args, err := r.sb.Insert("admin_users").
		Columns("email", "password_hash", "role", "created_at").
		Values(strings.ToLower(user.Email), user.PasswordHash, user.Role, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin user: %w", err)
	}
	return id, nil
}

// GetByEmail retrieves an admin account by email.
func (r *PostgresAdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select("id", "email", "password_hash", "role", "created_at").
		From("admin_users").
		Where(squirrel.Eq{"email": strings.ToLower(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	user := &models.AdminUser{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting admin by email: %w", err)
	}
	return user, nil
}

// Count returns the number of admin accounts.
func (r *PostgresAdminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting admin users: %w", err)
	}
	return count, nil
}
