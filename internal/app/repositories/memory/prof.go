package memory

import (
	"context"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

type profRepo struct {
	s *Store
}

// claimHeadLocked validates head eligibility and flags it choosed.
// Callers hold the write lock.
func (r *profRepo) claimHeadLocked(headID, profID int64) error {
	member, ok := r.s.team[headID]
	if !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	if member.Type != models.TypeProfburoHead {
		return apperrors.ErrHeadNotEligible
	}
	if member.IsChoosed {
		if prof, ok := r.s.profs[profID]; ok && prof.HeadID == headID {
			return nil // already heads this union
		}
		return apperrors.ErrHeadAlreadyAssigned
	}
	member.IsChoosed = true
	r.s.team[headID] = member
	return nil
}

func (r *profRepo) releaseHeadLocked(headID int64) {
	if member, ok := r.s.team[headID]; ok {
		member.IsChoosed = false
		r.s.team[headID] = member
	}
}

func (r *profRepo) withHeadLocked(prof models.FacultyUnion) *models.FacultyUnion {
	copied := prof
	if head, ok := r.s.team[prof.HeadID]; ok {
		copied.Head = &head
	}
	return &copied
}

func (r *profRepo) Create(_ context.Context, prof *models.FacultyUnion) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.claimHeadLocked(prof.HeadID, 0); err != nil {
		return 0, err
	}

	id := r.s.nextSeq()
	stored := *prof
	stored.ID = id
	stored.Head = nil
	r.s.profs[id] = stored
	return id, nil
}

func (r *profRepo) GetByID(_ context.Context, id int64) (*models.FacultyUnion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	prof, ok := r.s.profs[id]
	if !ok {
		return nil, apperrors.ErrProfNotFound
	}
	return r.withHeadLocked(prof), nil
}

func (r *profRepo) List(_ context.Context, opts repositories.ListOptions) ([]*models.FacultyUnion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*models.FacultyUnion, 0, len(r.s.profs))
	for id, prof := range r.s.profs {
		if opts.ExcludeID > 0 && id == opts.ExcludeID {
			continue
		}
		if opts.IsActive != nil && prof.IsActive != *opts.IsActive {
			continue
		}
		items = append(items, r.withHeadLocked(prof))
	}

	desc := sortOrder(opts.Order)
	switch opts.OrderBy {
	case "name":
		applyOrder(items, desc, func(a, b *models.FacultyUnion) bool { return a.Name < b.Name })
	case "id":
		applyOrder(items, desc, func(a, b *models.FacultyUnion) bool { return a.ID < b.ID })
	default:
		applyOrder(items, desc, func(a, b *models.FacultyUnion) bool { return a.OrderInd < b.OrderInd })
	}

	return items, nil
}

func (r *profRepo) Update(_ context.Context, prof *models.FacultyUnion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.profs[prof.ID]
	if !ok {
		return apperrors.ErrProfNotFound
	}

	if existing.HeadID != prof.HeadID {
		if err := r.claimHeadLocked(prof.HeadID, prof.ID); err != nil {
			return err
		}
		r.releaseHeadLocked(existing.HeadID)
	}

	stored := *prof
	stored.Head = nil
	r.s.profs[prof.ID] = stored
	return nil
}

func (r *profRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prof, ok := r.s.profs[id]
	if !ok {
		return apperrors.ErrProfNotFound
	}

	r.releaseHeadLocked(prof.HeadID)
	delete(r.s.profs, id)
	return nil
}
