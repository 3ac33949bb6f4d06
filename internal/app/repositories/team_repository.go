package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

var teamOrderColumns = map[string]string{
	"orderInd": "order_ind",
	"name":     "name",
	"type":     "type",
	"id":       "id",
}

const teamColumns = "id, name, position, type, email, image_url, order_ind, is_active, is_choosed"

// PostgresTeamRepository handles team member database operations.
type PostgresTeamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamRepository creates a postgres-backed TeamRepository.
func NewTeamRepository(db *pgxpool.Pool) *PostgresTeamRepository {
	return &PostgresTeamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanTeamMember(row pgx.Row) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Position, &m.Type, &m.Email,
		&m.ImageURL, &m.OrderInd, &m.IsActive, &m.IsChoosed,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a team member and returns the assigned id.
func (r *PostgresTeamRepository) Create(ctx context.Context, member *models.TeamMember) (int64, error) {
	sql, args, err := r.sb.Insert("team_members").
		Columns("name", "position", "type", "email", "image_url", "order_ind", "is_active", "is_choosed").
		Values(member.Name, member.Position, member.Type, member.Email,
			member.ImageURL, member.OrderInd, member.IsActive, member.IsChoosed).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create team member query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create team member query")
		return 0, fmt.Errorf("error creating team member: %w", err)
	}
	return id, nil
}

// GetByID retrieves a team member by id.
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	sql, args, err := r.sb.Select(teamColumns).
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get team member query: %w", err)
	}

	member, err := scanTeamMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("error getting team member by ID: %w", err)
	}
	return member, nil
}

// List retrieves team members ordered by order_ind unless told otherwise.
func (r *PostgresTeamRepository) List(ctx context.Context, opts ListOptions) ([]*models.TeamMember, error) {
	q := r.sb.Select(teamColumns).
		From("team_members").
		OrderBy(orderClause(teamOrderColumns, opts.OrderBy, opts.Order, "order_ind ASC"))

	if opts.IsActive != nil {
		q = q.Where(squirrel.Eq{"is_active": *opts.IsActive})
	}
	if opts.ExcludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": opts.ExcludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list team members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying team members: %w", err)
	}
	defer rows.Close()

	members := []*models.TeamMember{}
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning team member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}

	return members, nil
}

// AvailableHeads lists profburo heads free for assignment. The head of
// excludeProfID stays includable so an edit form keeps its current pick.
func (r *PostgresTeamRepository) AvailableHeads(ctx context.Context, excludeProfID int64) ([]*models.TeamMember, error) {
	free := squirrel.And{
		squirrel.Eq{"type": models.TypeProfburoHead},
		squirrel.Eq{"is_choosed": false},
	}

	var where squirrel.Sqlizer = free
	if excludeProfID > 0 {
		where = squirrel.Or{
			free,
			squirrel.Expr("id = (SELECT head_id FROM faculty_unions WHERE id = ?)", excludeProfID),
		}
	}

	sql, args, err := r.sb.Select(teamColumns).
		From("team_members").
		Where(where).
		OrderBy("order_ind ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build available heads query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying available heads: %w", err)
	}
	defer rows.Close()

	members := []*models.TeamMember{}
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning available head row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating available head rows: %w", err)
	}

	return members, nil
}

// Update replaces every field of a team member.
func (r *PostgresTeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	sql, args, err := r.sb.Update("team_members").
		SetMap(map[string]interface{}{
			"name":       member.Name,
			"position":   member.Position,
			"type":       member.Type,
			"email":      member.Email,
			"image_url":  member.ImageURL,
			"order_ind":  member.OrderInd,
			"is_active":  member.IsActive,
			"is_choosed": member.IsChoosed,
		}).
		Where(squirrel.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update team member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", member.ID).Msg("Error executing update team member query")
		return fmt.Errorf("error updating team member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}
	return nil
}

// Delete removes a team member by id.
func (r *PostgresTeamRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete team member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyError(err) {
			return apperrors.ErrMemberHeadsUnion
		}
		logger.Error().Err(err).Int64("memberID", id).Msg("Error executing delete team member query")
		return fmt.Errorf("error deleting team member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}
	return nil
}
