package memory

import (
	"context"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

type unitRepo struct {
	s *Store
}

func (r *unitRepo) Create(_ context.Context, unit *models.Unit) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := r.s.nextSeq()
	stored := *unit
	stored.ID = id
	r.s.units[id] = stored
	return id, nil
}

func (r *unitRepo) GetByID(_ context.Context, id int64) (*models.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	unit, ok := r.s.units[id]
	if !ok {
		return nil, apperrors.ErrUnitNotFound
	}
	return &unit, nil
}

func (r *unitRepo) List(_ context.Context, opts repositories.ListOptions) ([]*models.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*models.Unit, 0, len(r.s.units))
	for id, unit := range r.s.units {
		if opts.ExcludeID > 0 && id == opts.ExcludeID {
			continue
		}
		if opts.IsActive != nil && unit.IsActive != *opts.IsActive {
			continue
		}
		copied := unit
		items = append(items, &copied)
	}

	desc := sortOrder(opts.Order)
	switch opts.OrderBy {
	case "name":
		applyOrder(items, desc, func(a, b *models.Unit) bool { return a.Name < b.Name })
	case "createdAt":
		applyOrder(items, desc, func(a, b *models.Unit) bool { return a.CreatedAt.Before(b.CreatedAt) })
	case "id":
		applyOrder(items, desc, func(a, b *models.Unit) bool { return a.ID < b.ID })
	default:
		applyOrder(items, desc, func(a, b *models.Unit) bool { return a.OrderInd < b.OrderInd })
	}

	return items, nil
}

func (r *unitRepo) Update(_ context.Context, unit *models.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.units[unit.ID]
	if !ok {
		return apperrors.ErrUnitNotFound
	}

	updated := *unit
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = nowUTC()
	r.s.units[unit.ID] = updated
	return nil
}

func (r *unitRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.units[id]; !ok {
		return apperrors.ErrUnitNotFound
	}
	delete(r.s.units, id)
	return nil
}
