package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
)

// ListOptions carries the optional filters shared by all list queries.
type ListOptions struct {
	IsActive  *bool
	OrderBy   string
	Order     string // "asc" or "desc"
	ExcludeID int64
}

// NewsRepository persists news articles.
type NewsRepository interface {
	Create(ctx context.Context, article *models.NewsArticle) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.NewsArticle, error)
	List(ctx context.Context, opts ListOptions) ([]*models.NewsArticle, error)
	Update(ctx context.Context, article *models.NewsArticle) error
	Delete(ctx context.Context, id int64) error
}

// TeamRepository persists team members.
type TeamRepository interface {
	Create(ctx context.Context, member *models.TeamMember) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TeamMember, error)
	List(ctx context.Context, opts ListOptions) ([]*models.TeamMember, error)
	// AvailableHeads lists ProfburoHead members not yet assigned to a
	// faculty union. excludeProfID, when non-zero, keeps the head of
	// that union in the result so an edit form can show the current
	// assignment.
	AvailableHeads(ctx context.Context, excludeProfID int64) ([]*models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id int64) error
}

// ProfRepository persists faculty unions. Implementations keep the head
// assignment consistent: creating or re-pointing a union claims the new
// head (isChoosed=true) and releases the previous one, deleting a union
// releases its head. All of it happens atomically.
type ProfRepository interface {
	Create(ctx context.Context, prof *models.FacultyUnion) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.FacultyUnion, error)
	List(ctx context.Context, opts ListOptions) ([]*models.FacultyUnion, error)
	Update(ctx context.Context, prof *models.FacultyUnion) error
	Delete(ctx context.Context, id int64) error
}

// UnitRepository persists organizational units.
type UnitRepository interface {
	Create(ctx context.Context, unit *models.Unit) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Unit, error)
	List(ctx context.Context, opts ListOptions) ([]*models.Unit, error)
	Update(ctx context.Context, unit *models.Unit) error
	Delete(ctx context.Context, id int64) error
}

// AdminUserRepository persists dashboard accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	News  NewsRepository
	Team  TeamRepository
	Prof  ProfRepository
	Unit  UnitRepository
	Admin AdminUserRepository
}

// NewRepositories initializes the postgres-backed repository set.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		News:  NewNewsRepository(db),
		Team:  NewTeamRepository(db),
		Prof:  NewProfRepository(db),
		Unit:  NewUnitRepository(db),
		Admin: NewAdminUserRepository(db),
	}
}

// isDuplicateKeyError checks for a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyError checks for a PostgreSQL foreign key violation.
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// orderClause maps a client-facing orderBy value to a SQL ORDER BY
// expression against a column whitelist. Unknown fields fall back to
// the default clause.
func orderClause(allowed map[string]string, orderBy, order, def string) string {
	col, ok := allowed[orderBy]
	if !ok {
		return def
	}
	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}
