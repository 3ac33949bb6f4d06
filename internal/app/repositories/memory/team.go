package memory

import (
	"context"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

type teamRepo struct {
	s *Store
}

func (r *teamRepo) Create(_ context.Context, member *models.TeamMember) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := r.s.nextSeq()
	stored := *member
	stored.ID = id
	r.s.team[id] = stored
	return id, nil
}

func (r *teamRepo) GetByID(_ context.Context, id int64) (*models.TeamMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	member, ok := r.s.team[id]
	if !ok {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	return &member, nil
}

func (r *teamRepo) List(_ context.Context, opts repositories.ListOptions) ([]*models.TeamMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*models.TeamMember, 0, len(r.s.team))
	for id, member := range r.s.team {
		if opts.ExcludeID > 0 && id == opts.ExcludeID {
			continue
		}
		if opts.IsActive != nil && member.IsActive != *opts.IsActive {
			continue
		}
		copied := member
		items = append(items, &copied)
	}

	sortTeam(items, opts.OrderBy, sortOrder(opts.Order))
	return items, nil
}

func (r *teamRepo) AvailableHeads(_ context.Context, excludeProfID int64) ([]*models.TeamMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var currentHeadID int64
	if excludeProfID > 0 {
		if prof, ok := r.s.profs[excludeProfID]; ok {
			currentHeadID = prof.HeadID
		}
	}

	items := []*models.TeamMember{}
	for _, member := range r.s.team {
		if member.Type != models.TypeProfburoHead {
			continue
		}
		if member.IsChoosed && member.ID != currentHeadID {
			continue
		}
		copied := member
		items = append(items, &copied)
	}

	sortTeam(items, "orderInd", false)
	return items, nil
}

func (r *teamRepo) Update(_ context.Context, member *models.TeamMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.team[member.ID]; !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	r.s.team[member.ID] = *member
	return nil
}

func (r *teamRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.team[id]; !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	for _, prof := range r.s.profs {
		if prof.HeadID == id {
			return apperrors.ErrMemberHeadsUnion
		}
	}
	delete(r.s.team, id)
	return nil
}

func sortTeam(items []*models.TeamMember, orderBy string, desc bool) {
	switch orderBy {
	case "name":
		applyOrder(items, desc, func(a, b *models.TeamMember) bool { return a.Name < b.Name })
	case "type":
		applyOrder(items, desc, func(a, b *models.TeamMember) bool { return a.Type < b.Type })
	case "id":
		applyOrder(items, desc, func(a, b *models.TeamMember) bool { return a.ID < b.ID })
	default:
		applyOrder(items, desc, func(a, b *models.TeamMember) bool { return a.OrderInd < b.OrderInd })
	}
}
