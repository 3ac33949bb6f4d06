package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/helpers"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/sanitize"
)

// NewsService defines the interface for news operations
type NewsService interface {
	Create(ctx context.Context, form *dto.NewsForm, imageURL string) (*models.NewsArticle, error)
	GetByID(ctx context.Context, id int64) (*models.NewsArticle, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*models.NewsArticle, error)
	Update(ctx context.Context, id int64, form *dto.NewsForm, imageURL string) (*models.NewsArticle, error)
	Delete(ctx context.Context, id int64) error
}

type newsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

// NewNewsService creates a news service instance.
func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &newsServiceImpl{newsRepo: newsRepo}
}

func (s *newsServiceImpl) validate(form *dto.NewsForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return apperrors.NewValidationError("title cannot be empty")
	}
	if strings.TrimSpace(form.Content) == "" {
		return apperrors.NewValidationError("content cannot be empty")
	}
	return nil
}

// Create stores a new article. publishedAt is assigned here and never
// changes afterwards; content HTML is sanitized before it is persisted.
func (s *newsServiceImpl) Create(ctx context.Context, form *dto.NewsForm, imageURL string) (*models.NewsArticle, error) {
	if err := s.validate(form); err != nil {
		return nil, err
	}

	article := &models.NewsArticle{
		Title:       strings.TrimSpace(form.Title),
		Content:     sanitize.HTML(form.Content),
		ImageURL:    imageURL,
		IsImportant: form.IsImportant,
		PublishedAt: time.Now().UTC(),
	}

	id, err := s.newsRepo.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("error creating news: %w", err)
	}
	article.ID = id
	return article, nil
}

func (s *newsServiceImpl) GetByID(ctx context.Context, id int64) (*models.NewsArticle, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid news ID")
	}
	return s.newsRepo.GetByID(ctx, id)
}

// List returns articles, newest first by default, optionally narrowed
// by a case-insensitive substring search over title and content.
func (s *newsServiceImpl) List(ctx context.Context, query *dto.ListQuery) ([]*models.NewsArticle, error) {
	articles, err := s.newsRepo.List(ctx, repositories.ListOptions{
		OrderBy:   query.OrderBy,
		Order:     query.Order,
		ExcludeID: query.ExcludeID,
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving news: %w", err)
	}

	return helpers.Filter(articles, query.Query, func(a *models.NewsArticle) []string {
		return []string{a.Title, a.Content}
	}), nil
}

// Update replaces every mutable field (full-replace semantics). The
// caller resends ImageUrl when no new file was uploaded; publishedAt is
// preserved from the stored record.
func (s *newsServiceImpl) Update(ctx context.Context, id int64, form *dto.NewsForm, imageURL string) (*models.NewsArticle, error) {
	if err := s.validate(form); err != nil {
		return nil, err
	}

	existing, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article := &models.NewsArticle{
		ID:          id,
		Title:       strings.TrimSpace(form.Title),
		Content:     sanitize.HTML(form.Content),
		ImageURL:    imageURL,
		IsImportant: form.IsImportant,
		PublishedAt: existing.PublishedAt,
	}

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *newsServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid news ID")
	}
	return s.newsRepo.Delete(ctx, id)
}
