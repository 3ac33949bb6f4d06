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

var newsOrderColumns = map[string]string{
	"publishedAt": "published_at",
	"title":       "title",
	"id":          "id",
}

// PostgresNewsRepository handles news database operations.
type PostgresNewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a postgres-backed NewsRepository.
func NewNewsRepository(db *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a news article and returns the assigned id.
func (r *PostgresNewsRepository) Create(ctx context.Context, article *models.NewsArticle) (int64, error) {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "content", "image_url", "is_important", "published_at").
		Values(article.Title, article.Content, article.ImageURL, article.IsImportant, article.PublishedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create news query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return 0, fmt.Errorf("error creating news: %w", err)
	}
	return id, nil
}

// GetByID retrieves a news article by id.
func (r *PostgresNewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsArticle, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "image_url", "is_important", "published_at").
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	article := &models.NewsArticle{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&article.ID, &article.Title, &article.Content,
		&article.ImageURL, &article.IsImportant, &article.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		logger.Error().Err(err).Int64("newsID", id).Msg("Error scanning news row")
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}
	return article, nil
}

// List retrieves news articles, newest first unless told otherwise.
func (r *PostgresNewsRepository) List(ctx context.Context, opts ListOptions) ([]*models.NewsArticle, error) {
	q := r.sb.Select("id", "title", "content", "image_url", "is_important", "published_at").
		From("news").
		OrderBy(orderClause(newsOrderColumns, opts.OrderBy, opts.Order, "published_at DESC"))

	if opts.ExcludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": opts.ExcludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	articles := []*models.NewsArticle{}
	for rows.Next() {
		article := &models.NewsArticle{}
		if err := rows.Scan(
			&article.ID, &article.Title, &article.Content,
			&article.ImageURL, &article.IsImportant, &article.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}

	return articles, nil
}

// Update replaces every mutable field. published_at is server-owned and
// never written after create.
func (r *PostgresNewsRepository) Update(ctx context.Context, article *models.NewsArticle) error {
	sql, args, err := r.sb.Update("news").
		SetMap(map[string]interface{}{
			"title":        article.Title,
			"content":      article.Content,
			"image_url":    article.ImageURL,
			"is_important": article.IsImportant,
		}).
		Where(squirrel.Eq{"id": article.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", article.ID).Msg("Error executing update news query")
		return fmt.Errorf("error updating news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}

// Delete removes a news article by id.
func (r *PostgresNewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", id).Msg("Error executing delete news query")
		return fmt.Errorf("error deleting news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}
