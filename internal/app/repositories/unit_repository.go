package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

var unitOrderColumns = map[string]string{
	"orderInd":  "order_ind",
	"name":      "name",
	"createdAt": "created_at",
	"id":        "id",
}

const unitColumns = "id, name, content, image_url, order_ind, is_active, created_at, updated_at"

// PostgresUnitRepository handles unit database operations.
type PostgresUnitRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUnitRepository creates a postgres-backed UnitRepository.
func NewUnitRepository(db *pgxpool.Pool) *PostgresUnitRepository {
	return &PostgresUnitRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	u := &models.Unit{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Content, &u.ImageURL,
		&u.OrderInd, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a unit and returns the assigned id.
func (r *PostgresUnitRepository) Create(ctx context.Context, unit *models.Unit) (int64, error) {
	sql, args, err := r.sb.Insert("units").
		Columns("name", "content", "image_url", "order_ind", "is_active", "created_at", "updated_at").
		Values(unit.Name, unit.Content, unit.ImageURL, unit.OrderInd, unit.IsActive, unit.CreatedAt, unit.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create unit query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create unit query")
		return 0, fmt.Errorf("error creating unit: %w", err)
	}
	return id, nil
}

// GetByID retrieves a unit by id.
func (r *PostgresUnitRepository) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	sql, args, err := r.sb.Select(unitColumns).
		From("units").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get unit query: %w", err)
	}

	unit, err := scanUnit(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, fmt.Errorf("error getting unit by ID: %w", err)
	}
	return unit, nil
}

// List retrieves units ordered by order_ind unless told otherwise.
func (r *PostgresUnitRepository) List(ctx context.Context, opts ListOptions) ([]*models.Unit, error) {
	q := r.sb.Select(unitColumns).
		From("units").
		OrderBy(orderClause(unitOrderColumns, opts.OrderBy, opts.Order, "order_ind ASC"))

	if opts.IsActive != nil {
		q = q.Where(squirrel.Eq{"is_active": *opts.IsActive})
	}
	if opts.ExcludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": opts.ExcludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list units query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying units: %w", err)
	}
	defer rows.Close()

	units := []*models.Unit{}
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning unit row: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit rows: %w", err)
	}

	return units, nil
}

// Update replaces every mutable field and bumps updated_at.
func (r *PostgresUnitRepository) Update(ctx context.Context, unit *models.Unit) error {
	sql, args, err := r.sb.Update("units").
		SetMap(map[string]interface{}{
			"name":       unit.Name,
			"content":    unit.Content,
			"image_url":  unit.ImageURL,
			"order_ind":  unit.OrderInd,
			"is_active":  unit.IsActive,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": unit.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update unit query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("unitID", unit.ID).Msg("Error executing update unit query")
		return fmt.Errorf("error updating unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}
	return nil
}

// Delete removes a unit by id.
func (r *PostgresUnitRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("units").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete unit query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("unitID", id).Msg("Error executing delete unit query")
		return fmt.Errorf("error deleting unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}
	return nil
}
