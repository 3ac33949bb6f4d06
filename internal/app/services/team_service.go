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
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/validation"
)

// TeamService defines the interface for team directory operations
type TeamService interface {
	Create(ctx context.Context, form *dto.TeamMemberForm, imageURL string) (*models.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*models.TeamMember, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*models.TeamMember, error)
	AvailableHeads(ctx context.Context, excludeProfID int64) ([]*models.TeamMember, error)
	Update(ctx context.Context, id int64, form *dto.TeamMemberForm, imageURL string) (*models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type teamServiceImpl struct {
	teamRepo repositories.TeamRepository
}

// NewTeamService creates a team service instance.
func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamServiceImpl{teamRepo: teamRepo}
}

// buildMember shapes a form into a member record. Non-Aparat members
// get their position derived from the type; names pass through the same
// allow-list the admin form applies.
func (s *teamServiceImpl) buildMember(form *dto.TeamMemberForm) (*models.TeamMember, error) {
	memberType := models.TeamMemberType(form.Type)
	if !memberType.IsValid() {
		return nil, apperrors.NewValidationError("unknown team member type")
	}

	name := validation.CleanName(form.Name)
	if !validation.ValidName(name) {
		return nil, apperrors.NewValidationError("name must contain only letters, spaces, apostrophes and hyphens")
	}

	email := strings.TrimSpace(form.Email)
	if email != "" && !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}

	position := memberType.DerivedPosition()
	if memberType == models.TypeAparat {
		position = strings.TrimSpace(form.Position)
		if position == "" {
			return nil, apperrors.NewValidationError("position is required for aparat members")
		}
	}

	return &models.TeamMember{
		Name:     name,
		Position: position,
		Type:     memberType,
		Email:    email,
		OrderInd: form.OrderInd,
		IsActive: form.IsActive,
	}, nil
}

func (s *teamServiceImpl) Create(ctx context.Context, form *dto.TeamMemberForm, imageURL string) (*models.TeamMember, error) {
	member, err := s.buildMember(form)
	if err != nil {
		return nil, err
	}
	member.ImageURL = imageURL

	id, err := s.teamRepo.Create(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("error creating team member: %w", err)
	}
	member.ID = id
	return member, nil
}

func (s *teamServiceImpl) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid team member ID")
	}
	return s.teamRepo.GetByID(ctx, id)
}

func (s *teamServiceImpl) List(ctx context.Context, query *dto.ListQuery) ([]*models.TeamMember, error) {
	members, err := s.teamRepo.List(ctx, repositories.ListOptions{
		IsActive:  query.IsActive,
		OrderBy:   query.OrderBy,
		Order:     query.Order,
		ExcludeID: query.ExcludeID,
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving team members: %w", err)
	}

	return helpers.Filter(members, query.Query, func(m *models.TeamMember) []string {
		return []string{m.Name, m.Position, m.Email}
	}), nil
}

func (s *teamServiceImpl) AvailableHeads(ctx context.Context, excludeProfID int64) ([]*models.TeamMember, error) {
	heads, err := s.teamRepo.AvailableHeads(ctx, excludeProfID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving available heads: %w", err)
	}
	return heads, nil
}

// Update replaces every field the form carries. The isChoosed flag is
// owned by faculty union writes and survives the update untouched. A
// member currently heading a union keeps the profburo head type until
// the union is re-pointed or deleted.
func (s *teamServiceImpl) Update(ctx context.Context, id int64, form *dto.TeamMemberForm, imageURL string) (*models.TeamMember, error) {
	existing, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member, err := s.buildMember(form)
	if err != nil {
		return nil, err
	}
	if existing.IsChoosed && member.Type != models.TypeProfburoHead {
		return nil, apperrors.ErrHeadTypeLocked
	}
	member.ID = id
	member.ImageURL = imageURL
	member.IsChoosed = existing.IsChoosed

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *teamServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid team member ID")
	}
	return s.teamRepo.Delete(ctx, id)
}
