package services

import (
	"context"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/google/uuid"
)

// TeamService handles team member operations
type TeamService struct {
	repo TeamRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// ParseCategory validates an optional category filter. Empty means every category.
func ParseCategory(raw string) (models.TeamCategory, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", nil
	}
	cat := models.TeamCategory(raw)
	if !cat.Valid() {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidTeamCategory, "Category must be team or leadership")
	}
	return cat, nil
}

// ListPublic returns active members, optionally of one category
func (s *TeamService) ListPublic(ctx context.Context, category models.TeamCategory) ([]*models.TeamMember, error) {
	return s.repo.List(ctx, models.TeamFilter{ActiveOnly: true, Category: category})
}

// ListAll returns every member for the dashboard
func (s *TeamService) ListAll(ctx context.Context, category models.TeamCategory) ([]*models.TeamMember, error) {
	return s.repo.List(ctx, models.TeamFilter{Category: category})
}

// Create inserts a new active team member
func (s *TeamService) Create(ctx context.Context, req *dto.TeamMemberRequest) (*models.TeamMember, error) {
	m := &models.TeamMember{IsActive: true, Category: models.TeamCategoryTeam}
	if err := applyTeamRequest(m, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the editable fields of member id
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *dto.TeamMemberRequest) (*models.TeamMember, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyTeamRequest(m, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes member id
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyTeamRequest(m *models.TeamMember, req *dto.TeamMemberRequest) error {
	name := strings.TrimSpace(req.Name)
	position := strings.TrimSpace(req.Position)
	if name == "" || position == "" {
		return apperrors.NewValidationError("Name and position are required")
	}
	cat, err := ParseCategory(req.Category)
	if err != nil {
		return err
	}
	if cat == "" {
		cat = m.Category
	}
	if cat == "" {
		cat = models.TeamCategoryTeam
	}

	m.Name = name
	m.Position = position
	m.Bio = strings.TrimSpace(req.Bio)
	m.ImageURL = strings.TrimSpace(req.ImageURL)
	m.Category = cat
	m.SortOrder = intOr(req.SortOrder, m.SortOrder)
	m.IsActive = boolOr(req.IsActive, m.IsActive)
	return nil
}
