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

// UnitService defines the interface for organizational unit operations
type UnitService interface {
	Create(ctx context.Context, form *dto.UnitForm, imageURL string) (*models.Unit, error)
	GetByID(ctx context.Context, id int64) (*models.Unit, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*models.Unit, error)
	Update(ctx context.Context, id int64, form *dto.UnitForm, imageURL string) (*models.Unit, error)
	Delete(ctx context.Context, id int64) error
}

type unitServiceImpl struct {
	unitRepo repositories.UnitRepository
}

// NewUnitService creates a unit service instance.
func NewUnitService(unitRepo repositories.UnitRepository) UnitService {
	return &unitServiceImpl{unitRepo: unitRepo}
}

func (s *unitServiceImpl) validate(form *dto.UnitForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	return nil
}

func (s *unitServiceImpl) Create(ctx context.Context, form *dto.UnitForm, imageURL string) (*models.Unit, error) {
	if err := s.validate(form); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	unit := &models.Unit{
		Name:      strings.TrimSpace(form.Name),
		Content:   sanitize.HTML(form.Content),
		ImageURL:  imageURL,
		OrderInd:  form.OrderInd,
		IsActive:  form.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.unitRepo.Create(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("error creating unit: %w", err)
	}
	unit.ID = id
	return unit, nil
}

func (s *unitServiceImpl) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid unit ID")
	}
	return s.unitRepo.GetByID(ctx, id)
}

func (s *unitServiceImpl) List(ctx context.Context, query *dto.ListQuery) ([]*models.Unit, error) {
	units, err := s.unitRepo.List(ctx, repositories.ListOptions{
		IsActive:  query.IsActive,
		OrderBy:   query.OrderBy,
		Order:     query.Order,
		ExcludeID: query.ExcludeID,
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving units: %w", err)
	}

	return helpers.Filter(units, query.Query, func(u *models.Unit) []string {
		return []string{u.Name, u.Content}
	}), nil
}

// Update replaces every mutable field. createdAt is preserved from the
// stored record, updatedAt is bumped.
func (s *unitServiceImpl) Update(ctx context.Context, id int64, form *dto.UnitForm, imageURL string) (*models.Unit, error) {
	if err := s.validate(form); err != nil {
		return nil, err
	}

	existing, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit := &models.Unit{
		ID:        id,
		Name:      strings.TrimSpace(form.Name),
		Content:   sanitize.HTML(form.Content),
		ImageURL:  imageURL,
		OrderInd:  form.OrderInd,
		IsActive:  form.IsActive,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *unitServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid unit ID")
	}
	return s.unitRepo.Delete(ctx, id)
}
