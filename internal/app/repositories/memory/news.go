package memory

import (
	"context"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

type newsRepo struct {
	s *Store
}

func (r *newsRepo) Create(_ context.Context, article *models.NewsArticle) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := r.s.nextSeq()
	stored := *article
	stored.ID = id
	r.s.news[id] = stored
	return id, nil
}

func (r *newsRepo) GetByID(_ context.Context, id int64) (*models.NewsArticle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	article, ok := r.s.news[id]
	if !ok {
		return nil, apperrors.ErrNewsNotFound
	}
	return &article, nil
}

func (r *newsRepo) List(_ context.Context, opts repositories.ListOptions) ([]*models.NewsArticle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*models.NewsArticle, 0, len(r.s.news))
	for id, article := range r.s.news {
		if opts.ExcludeID > 0 && id == opts.ExcludeID {
			continue
		}
		copied := article
		items = append(items, &copied)
	}

	desc := sortOrder(opts.Order)
	switch opts.OrderBy {
	case "title":
		applyOrder(items, desc, func(a, b *models.NewsArticle) bool { return a.Title < b.Title })
	case "id":
		applyOrder(items, desc, func(a, b *models.NewsArticle) bool { return a.ID < b.ID })
	case "publishedAt":
		applyOrder(items, desc, func(a, b *models.NewsArticle) bool { return a.PublishedAt.Before(b.PublishedAt) })
	default:
		// newest first, matching the public news feed
		applyOrder(items, true, func(a, b *models.NewsArticle) bool { return a.PublishedAt.Before(b.PublishedAt) })
	}

	return items, nil
}

func (r *newsRepo) Update(_ context.Context, article *models.NewsArticle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.news[article.ID]
	if !ok {
		return apperrors.ErrNewsNotFound
	}

	updated := *article
	updated.PublishedAt = existing.PublishedAt // immutable after create
	r.s.news[article.ID] = updated
	return nil
}

func (r *newsRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.news[id]; !ok {
		return apperrors.ErrNewsNotFound
	}
	delete(r.s.news, id)
	return nil
}
