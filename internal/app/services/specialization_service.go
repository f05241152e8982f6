package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
)

const specializationAssetPrefix = "specialization"

// SpecializationService handles specialization catalog operations
type SpecializationService struct {
	repo    SpecializationRepository
	courses CourseRepository
	media   MediaRepository
	site    SiteSettings
}

// NewSpecializationService creates a new SpecializationService
func NewSpecializationService(repo SpecializationRepository, courses CourseRepository, media MediaRepository, site SiteSettings) *SpecializationService {
	return &SpecializationService{repo: repo, courses: courses, media: media, site: site}
}

// ListPublic returns active specializations in display order with their images resolved
func (s *SpecializationService) ListPublic(ctx context.Context) ([]*models.Specialization, error) {
	list, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	s.resolveImages(ctx, list)
	return list, nil
}

// ListAll returns every specialization for the dashboard
func (s *SpecializationService) ListAll(ctx context.Context) ([]*models.Specialization, error) {
	return s.repo.List(ctx, false)
}

// GetDetail returns an active specialization with its active courses and page meta
func (s *SpecializationService) GetDetail(ctx context.Context, slug string) (*dto.SpecializationDetailResponse, error) {
	sp, err := s.repo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.List(ctx, models.CourseFilter{ActiveOnly: true, SpecializationSlug: sp.Slug})
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		c.Normalize()
	}

	return &dto.SpecializationDetailResponse{
		Specialization: sp,
		ImageURL:       s.ResolveImage(ctx, sp),
		Courses:        courses,
		Meta:           s.site.SpecializationMeta(sp),
	}, nil
}

// ResolveImage prefers the active media asset keyed after the specialization name and
// falls back to the row's image_url.
func (s *SpecializationService) ResolveImage(ctx context.Context, sp *models.Specialization) string {
	return resolveAssetURL(ctx, s.media, helpers.AssetKeyFor(specializationAssetPrefix, sp.Name), sp.ImageURL)
}

// resolveAssetURL returns the URL of the active asset key, or fallback when there is none.
// Lookup failures are logged and also fall back.
func resolveAssetURL(ctx context.Context, media MediaRepository, key, fallback string) string {
	asset, err := media.GetByKey(ctx, key, true)
	if err != nil {
		if !errors.Is(err, apperrors.ErrMediaAssetNotFound) {
			logger.Warn().Err(err).Str("assetKey", key).Msg("Falling back to stored image")
		}
		return fallback
	}
	return asset.AssetURL
}

func (s *SpecializationService) resolveImages(ctx context.Context, list []*models.Specialization) {
	if len(list) == 0 {
		return
	}
	keys := make([]string, len(list))
	for i, sp := range list {
		keys[i] = helpers.AssetKeyFor(specializationAssetPrefix, sp.Name)
	}
	assets, err := s.media.GetByKeys(ctx, keys)
	if err != nil {
		logger.Warn().Err(err).Msg("Falling back to stored specialization images")
		return
	}
	for i, sp := range list {
		if a, ok := assets[keys[i]]; ok {
			sp.ImageURL = a.AssetURL
		}
	}
}

// Create validates req and inserts a new active specialization
func (s *SpecializationService) Create(ctx context.Context, req *dto.SpecializationRequest) (*models.Specialization, error) {
	sp := &models.Specialization{IsActive: true}
	if err := applySpecializationRequest(sp, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		if errors.Is(err, apperrors.ErrSpecializationExists) {
			return nil, apperrors.NewCustomError(err, fmt.Sprintf("A specialization with slug %q already exists", sp.Slug))
		}
		return nil, err
	}
	logger.Info().Str("id", sp.ID.String()).Str("slug", sp.Slug).Msg("Specialization created")
	return sp, nil
}

// Update replaces the editable fields of specialization id
func (s *SpecializationService) Update(ctx context.Context, id uuid.UUID, req *dto.SpecializationRequest) (*models.Specialization, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applySpecializationRequest(sp, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		if errors.Is(err, apperrors.ErrSpecializationExists) {
			return nil, apperrors.NewCustomError(err, fmt.Sprintf("A specialization with slug %q already exists", sp.Slug))
		}
		return nil, err
	}
	return sp, nil
}

// Delete removes specialization id. Specializations that still own courses are refused.
func (s *SpecializationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrSpecializationInUse) {
			return apperrors.NewCustomError(err, "Remove or reassign the courses of this specialization first")
		}
		return err
	}
	logger.Info().Str("id", id.String()).Msg("Specialization deleted")
	return nil
}

func applySpecializationRequest(sp *models.Specialization, req *dto.SpecializationRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apperrors.NewValidationError("Name is required")
	}
	slug := req.Slug
	if strings.TrimSpace(slug) == "" {
		slug = name
	}
	slug = helpers.GenerateSlug(slug)
	if slug == "" {
		return apperrors.NewValidationError("Slug must contain letters or digits")
	}

	sp.Name = name
	sp.Slug = slug
	sp.Description = strings.TrimSpace(req.Description)
	sp.ImageURL = strings.TrimSpace(req.ImageURL)
	sp.SortOrder = intOr(req.SortOrder, sp.SortOrder)
	sp.IsActive = boolOr(req.IsActive, sp.IsActive)
	return nil
}
