package memory

import (
	"context"
	"strings"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
)

type adminRepo struct {
	s *Store
}

func (r *adminRepo) Create(_ context.Context, user *models.AdminUser) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, existing := range r.s.admins {
		if existing.Email == email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}

	id := r.s.nextSeq()
	stored := *user
	stored.ID = id
	stored.Email = email
	r.s.admins[id] = stored
	return id, nil
}

func (r *adminRepo) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range r.s.admins {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *adminRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.admins)), nil
}
