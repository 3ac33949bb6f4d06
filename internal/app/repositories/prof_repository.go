package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/db"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
)

var profOrderColumns = map[string]string{
	"orderInd": "p.order_ind",
	"name":     "p.name",
	"id":       "p.id",
}

const profSelectColumns = `p.id, p.name, p.head_id, p.address, p.room, p.schedule, p.summary,
	p.telegram_link, p.instagram_link, p.image_url, p.is_active, p.order_ind,
	t.id, t.name, t.position, t.type, t.email, t.image_url, t.order_ind, t.is_active, t.is_choosed`

// PostgresProfRepository handles faculty union database operations. All
// writes run in a transaction so the head's is_choosed flag can never
// drift from the unions table.
type PostgresProfRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfRepository creates a postgres-backed ProfRepository.
func NewProfRepository(db *pgxpool.Pool) *PostgresProfRepository {
	return &PostgresProfRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProf(row pgx.Row) (*models.FacultyUnion, error) {
	p := &models.FacultyUnion{}
	head := &models.TeamMember{}
	err := row.Scan(
		&p.ID, &p.Name, &p.HeadID, &p.Address, &p.Room, &p.Schedule, &p.Summary,
		&p.TelegramLink, &p.InstagramLink, &p.ImageURL, &p.IsActive, &p.OrderInd,
		&head.ID, &head.Name, &head.Position, &head.Type, &head.Email,
		&head.ImageURL, &head.OrderInd, &head.IsActive, &head.IsChoosed,
	)
	if err != nil {
		return nil, err
	}
	p.Head = head
	return p, nil
}

// claimHead locks the candidate head row, verifies eligibility and
// flags it as choosed. profID identifies the union being edited so its
// current head may be re-claimed.
func claimHead(ctx context.Context, tx pgx.Tx, headID, profID int64) error {
	var memberType models.TeamMemberType
	var isChoosed bool
	err := tx.QueryRow(ctx,
		`SELECT type, is_choosed FROM team_members WHERE id = $1 FOR UPDATE`, headID,
	).Scan(&memberType, &isChoosed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("error locking head row: %w", err)
	}

	if memberType != models.TypeProfburoHead {
		return apperrors.ErrHeadNotEligible
	}

	if isChoosed {
		var headsThisProf bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM faculty_unions WHERE head_id = $1 AND id = $2)`,
			headID, profID,
		).Scan(&headsThisProf)
		if err != nil {
			return fmt.Errorf("error checking head assignment: %w", err)
		}
		if !headsThisProf {
			return apperrors.ErrHeadAlreadyAssigned
		}
		return nil // already ours
	}

	if _, err := tx.Exec(ctx,
		`UPDATE team_members SET is_choosed = TRUE WHERE id = $1`, headID,
	); err != nil {
		return fmt.Errorf("error claiming head: %w", err)
	}
	return nil
}

func releaseHead(ctx context.Context, tx pgx.Tx, headID int64) error {
	if _, err := tx.Exec(ctx,
		`UPDATE team_members SET is_choosed = FALSE WHERE id = $1`, headID,
	); err != nil {
		return fmt.Errorf("error releasing head: %w", err)
	}
	return nil
}

// Create inserts a faculty union and claims its head.
func (r *PostgresProfRepository) Create(ctx context.Context, prof *models.FacultyUnion) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := claimHead(ctx, tx, prof.HeadID, 0); err != nil {
			return err
		}

		return tx.QueryRow(ctx,
			`INSERT INTO faculty_unions
				(name, head_id, address, room, schedule, summary,
				 telegram_link, instagram_link, image_url, is_active, order_ind)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			 RETURNING id`,
			prof.Name, prof.HeadID, prof.Address, prof.Room, prof.Schedule, prof.Summary,
			prof.TelegramLink, prof.InstagramLink, prof.ImageURL, prof.IsActive, prof.OrderInd,
		).Scan(&id)
	})
	if err != nil {
		if isDomainProfError(err) {
			return 0, err
		}
		logger.Error().Err(err).Msg("Error creating faculty union")
		return 0, fmt.Errorf("error creating faculty union: %w", err)
	}
	return id, nil
}

// GetByID retrieves a faculty union with its head embedded.
func (r *PostgresProfRepository) GetByID(ctx context.Context, id int64) (*models.FacultyUnion, error) {
	sql, args, err := r.sb.Select(profSelectColumns).
		From("faculty_unions p").
		Join("team_members t ON t.id = p.head_id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty union query: %w", err)
	}

	prof, err := scanProf(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfNotFound
		}
		return nil, fmt.Errorf("error getting faculty union by ID: %w", err)
	}
	return prof, nil
}

// List retrieves faculty unions with heads embedded.
func (r *PostgresProfRepository) List(ctx context.Context, opts ListOptions) ([]*models.FacultyUnion, error) {
	q := r.sb.Select(profSelectColumns).
		From("faculty_unions p").
		Join("team_members t ON t.id = p.head_id").
		OrderBy(orderClause(profOrderColumns, opts.OrderBy, opts.Order, "p.order_ind ASC"))

	if opts.IsActive != nil {
		q = q.Where(squirrel.Eq{"p.is_active": *opts.IsActive})
	}
	if opts.ExcludeID > 0 {
		q = q.Where(squirrel.NotEq{"p.id": opts.ExcludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty unions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faculty unions: %w", err)
	}
	defer rows.Close()

	profs := []*models.FacultyUnion{}
	for rows.Next() {
		prof, err := scanProf(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty union row: %w", err)
		}
		profs = append(profs, prof)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty union rows: %w", err)
	}

	return profs, nil
}

// Update replaces every field. On a head change the old head is
// released and the new one claimed within the same transaction.
func (r *PostgresProfRepository) Update(ctx context.Context, prof *models.FacultyUnion) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var currentHeadID int64
		err := tx.QueryRow(ctx,
			`SELECT head_id FROM faculty_unions WHERE id = $1 FOR UPDATE`, prof.ID,
		).Scan(&currentHeadID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrProfNotFound
			}
			return fmt.Errorf("error locking faculty union row: %w", err)
		}

		if currentHeadID != prof.HeadID {
			if err := claimHead(ctx, tx, prof.HeadID, prof.ID); err != nil {
				return err
			}
			if err := releaseHead(ctx, tx, currentHeadID); err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE faculty_unions SET
				name=$1, head_id=$2, address=$3, room=$4, schedule=$5, summary=$6,
				telegram_link=$7, instagram_link=$8, image_url=$9, is_active=$10, order_ind=$11
			 WHERE id=$12`,
			prof.Name, prof.HeadID, prof.Address, prof.Room, prof.Schedule, prof.Summary,
			prof.TelegramLink, prof.InstagramLink, prof.ImageURL, prof.IsActive, prof.OrderInd,
			prof.ID,
		)
		if err != nil {
			return fmt.Errorf("error updating faculty union: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDomainProfError(err) {
			return err
		}
		logger.Error().Err(err).Int64("profID", prof.ID).Msg("Error updating faculty union")
		return fmt.Errorf("error updating faculty union: %w", err)
	}
	return nil
}

// Delete removes a faculty union and releases its head.
func (r *PostgresProfRepository) Delete(ctx context.Context, id int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var headID int64
		err := tx.QueryRow(ctx,
			`SELECT head_id FROM faculty_unions WHERE id = $1 FOR UPDATE`, id,
		).Scan(&headID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrProfNotFound
			}
			return fmt.Errorf("error locking faculty union row: %w", err)
		}

		if err := releaseHead(ctx, tx, headID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM faculty_unions WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting faculty union: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDomainProfError(err) {
			return err
		}
		logger.Error().Err(err).Int64("profID", id).Msg("Error deleting faculty union")
		return fmt.Errorf("error deleting faculty union: %w", err)
	}
	return nil
}

// isDomainProfError keeps sentinel errors unwrapped for the error
// middleware to classify.
func isDomainProfError(err error) bool {
	return errors.Is(err, apperrors.ErrProfNotFound) ||
		errors.Is(err, apperrors.ErrTeamMemberNotFound) ||
		errors.Is(err, apperrors.ErrHeadNotEligible) ||
		errors.Is(err, apperrors.ErrHeadAlreadyAssigned)
}
