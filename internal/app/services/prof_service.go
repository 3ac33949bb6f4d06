package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/apperrors"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/helpers"
)

// ProfService defines the interface for faculty union operations
type ProfService interface {
	Create(ctx context.Context, form *dto.ProfForm, imageURL string) (*models.FacultyUnion, error)
	GetByID(ctx context.Context, id int64) (*models.FacultyUnion, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*models.FacultyUnion, error)
	Update(ctx context.Context, id int64, form *dto.ProfForm, imageURL string) (*models.FacultyUnion, error)
	Delete(ctx context.Context, id int64) error
}

type profServiceImpl struct {
	profRepo repositories.ProfRepository
}

// NewProfService creates a faculty union service instance.
func NewProfService(profRepo repositories.ProfRepository) ProfService {
	return &profServiceImpl{profRepo: profRepo}
}

func (s *profServiceImpl) buildUnion(form *dto.ProfForm, imageURL string) (*models.FacultyUnion, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if form.HeadID <= 0 {
		return nil, apperrors.NewValidationError("head ID is required")
	}

	return &models.FacultyUnion{
		Name:          name,
		HeadID:        form.HeadID,
		Address:       strings.TrimSpace(form.Address),
		Room:          strings.TrimSpace(form.Room),
		Schedule:      strings.TrimSpace(form.Schedule),
		Summary:       form.Summary,
		TelegramLink:  strings.TrimSpace(form.TelegramLink),
		InstagramLink: strings.TrimSpace(form.InstagramLink),
		ImageURL:      imageURL,
		OrderInd:      form.OrderInd,
		IsActive:      form.IsActive,
	}, nil
}

// Create stores a faculty union and claims its head atomically. The
// returned record carries the embedded head loaded from storage.
func (s *profServiceImpl) Create(ctx context.Context, form *dto.ProfForm, imageURL string) (*models.FacultyUnion, error) {
	prof, err := s.buildUnion(form, imageURL)
	if err != nil {
		return nil, err
	}

	id, err := s.profRepo.Create(ctx, prof)
	if err != nil {
		return nil, err
	}
	return s.profRepo.GetByID(ctx, id)
}

func (s *profServiceImpl) GetByID(ctx context.Context, id int64) (*models.FacultyUnion, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid faculty union ID")
	}
	return s.profRepo.GetByID(ctx, id)
}

// List returns unions ordered by orderInd, optionally narrowed by a
// case-insensitive substring search over name, head name and address.
func (s *profServiceImpl) List(ctx context.Context, query *dto.ListQuery) ([]*models.FacultyUnion, error) {
	profs, err := s.profRepo.List(ctx, repositories.ListOptions{
		IsActive:  query.IsActive,
		OrderBy:   query.OrderBy,
		Order:     query.Order,
		ExcludeID: query.ExcludeID,
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty unions: %w", err)
	}

	return helpers.Filter(profs, query.Query, func(p *models.FacultyUnion) []string {
		fields := []string{p.Name, p.Address}
		if p.Head != nil {
			fields = append(fields, p.Head.Name)
		}
		return fields
	}), nil
}

// Update replaces every field of a union. Re-pointing HeadId releases
// the previous head and claims the new one in the same transaction.
func (s *profServiceImpl) Update(ctx context.Context, id int64, form *dto.ProfForm, imageURL string) (*models.FacultyUnion, error) {
	prof, err := s.buildUnion(form, imageURL)
	if err != nil {
		return nil, err
	}
	prof.ID = id

	if err := s.profRepo.Update(ctx, prof); err != nil {
		return nil, err
	}
	return s.profRepo.GetByID(ctx, id)
}

func (s *profServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid faculty union ID")
	}
	return s.profRepo.Delete(ctx, id)
}
