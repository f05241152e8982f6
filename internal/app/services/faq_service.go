package services

import (
	"context"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/google/uuid"
)

// FAQService handles FAQ operations
type FAQService struct {
	repo FAQRepository
}

func NewFAQService(repo FAQRepository) *FAQService {
	return &FAQService{repo: repo}
}

func (s *FAQService) ListPublic(ctx context.Context) ([]*models.FAQ, error) {
	return s.repo.List(ctx, true)
}

func (s *FAQService) ListAll(ctx context.Context) ([]*models.FAQ, error) {
	return s.repo.List(ctx, false)
}

func (s *FAQService) Create(ctx context.Context, req *dto.FAQRequest) (*models.FAQ, error) {
	f := &models.FAQ{IsActive: true}
	if err := applyFAQRequest(f, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FAQService) Update(ctx context.Context, id uuid.UUID, req *dto.FAQRequest) (*models.FAQ, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyFAQRequest(f, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FAQService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyFAQRequest(f *models.FAQ, req *dto.FAQRequest) error {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		return apperrors.NewValidationError("Question and answer are required")
	}
	f.Question = question
	f.Answer = answer
	f.SortOrder = intOr(req.SortOrder, f.SortOrder)
	f.IsActive = boolOr(req.IsActive, f.IsActive)
	return nil
}
