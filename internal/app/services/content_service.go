package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/bigbinarytech/institute/internal/pkg/validation"
)

// ContentService serves the editable JSON documents of the home page sections
type ContentService struct {
	repo ContentRepository
}

// NewContentService creates a new ContentService
func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// Get returns the document of section
func (s *ContentService) Get(ctx context.Context, section string) (*models.WebsiteContent, error) {
	if !validation.IsSection(section) {
		return nil, apperrors.ErrContentNotFound
	}
	return s.repo.Get(ctx, section)
}

// List returns every section document
func (s *ContentService) List(ctx context.Context) ([]*models.WebsiteContent, error) {
	return s.repo.List(ctx)
}

// Update replaces the document of section, creating it when absent. The document
// must be a JSON object or array.
func (s *ContentService) Update(ctx context.Context, section string, content json.RawMessage) (*models.WebsiteContent, error) {
	if !validation.IsSection(section) {
		return nil, apperrors.NewValidationError("Section must be a lowercase identifier such as hero or why_choose_us")
	}
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, apperrors.NewValidationError("Content must be valid JSON")
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, apperrors.NewValidationError("Content must be a JSON object or array")
	}

	wc, err := s.repo.Upsert(ctx, section, json.RawMessage(trimmed))
	if err != nil {
		return nil, err
	}
	logger.Info().Str("section", section).Msg("Website content updated")
	return wc, nil
}
