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

const courseAssetPrefix = "course"

// CourseService handles course catalog operations
type CourseService struct {
	repo            CourseRepository
	specializations SpecializationRepository
	media           MediaRepository
	site            SiteSettings
}

// NewCourseService creates a new CourseService
func NewCourseService(repo CourseRepository, specializations SpecializationRepository, media MediaRepository, site SiteSettings) *CourseService {
	return &CourseService{repo: repo, specializations: specializations, media: media, site: site}
}

// ListPublic returns active courses of active specializations. A non-empty
// specializationSlug must name an active specialization.
func (s *CourseService) ListPublic(ctx context.Context, specializationSlug string) ([]*models.Course, error) {
	if specializationSlug != "" {
		if _, err := s.specializations.GetBySlug(ctx, specializationSlug, true); err != nil {
			return nil, err
		}
	}
	return s.list(ctx, models.CourseFilter{ActiveOnly: true, SpecializationSlug: specializationSlug})
}

// ListAll returns every course for the dashboard, optionally for one specialization
func (s *CourseService) ListAll(ctx context.Context, specializationSlug string) ([]*models.Course, error) {
	return s.list(ctx, models.CourseFilter{SpecializationSlug: specializationSlug})
}

func (s *CourseService) list(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		c.Normalize()
	}
	return courses, nil
}

// GetDetail returns an active course with its hero image and page meta
func (s *CourseService) GetDetail(ctx context.Context, slug string) (*dto.CourseDetailResponse, error) {
	c, err := s.repo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	c.Normalize()
	return &dto.CourseDetailResponse{
		Course:   c,
		ImageURL: s.ResolveImage(ctx, c),
		Meta:     s.site.CourseMeta(c),
	}, nil
}

// ResolveImage prefers the active media asset "course_<slug>" over the row's image_url.
func (s *CourseService) ResolveImage(ctx context.Context, c *models.Course) string {
	return resolveAssetURL(ctx, s.media, helpers.AssetKeyFor(courseAssetPrefix, c.Slug), c.ImageURL)
}

// GetByID returns any course by id
func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Normalize()
	return c, nil
}

// Create validates req and inserts a new active course
func (s *CourseService) Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	c := &models.Course{IsActive: true}
	if err := applyCourseRequest(c, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, courseWriteError(err, c)
	}
	c.Normalize()
	logger.Info().Str("id", c.ID.String()).Str("slug", c.Slug).Msg("Course created")
	return c, nil
}

// Update replaces the editable fields of course id
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, req *dto.CourseRequest) (*models.Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCourseRequest(c, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, courseWriteError(err, c)
	}
	c.Normalize()
	return c, nil
}

// Delete removes course id
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("id", id.String()).Msg("Course deleted")
	return nil
}

func courseWriteError(err error, c *models.Course) error {
	switch {
	case errors.Is(err, apperrors.ErrCourseExists):
		return apperrors.NewCustomError(err, fmt.Sprintf("A course with slug %q already exists", c.Slug))
	case errors.Is(err, apperrors.ErrInvalidSpecialization):
		return apperrors.NewCustomError(err, "Selected specialization does not exist")
	}
	return err
}

func applyCourseRequest(c *models.Course, req *dto.CourseRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return apperrors.NewValidationError("Title is required")
	}
	slug := req.Slug
	if strings.TrimSpace(slug) == "" {
		slug = title
	}
	slug = helpers.GenerateSlug(slug)
	if slug == "" {
		return apperrors.NewValidationError("Slug must contain letters or digits")
	}
	specID, err := uuid.Parse(strings.TrimSpace(req.SpecializationID))
	if err != nil || specID == uuid.Nil {
		return apperrors.NewValidationError("A valid specialization is required")
	}
	if req.Price < 0 {
		return apperrors.NewValidationError("Price cannot be negative")
	}
	for i, m := range req.Modules {
		if strings.TrimSpace(m.Title) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("Module %d needs a title", i+1))
		}
	}

	duration := strings.TrimSpace(req.Duration)
	if duration == "" {
		duration = models.DefaultCourseDuration
	}

	c.Title = title
	c.Slug = slug
	c.Summary = strings.TrimSpace(req.Summary)
	c.Introduction = strings.TrimSpace(req.Introduction)
	c.Duration = duration
	c.Price = req.Price
	c.Audience = strings.TrimSpace(req.Audience)
	c.ImageURL = strings.TrimSpace(req.ImageURL)
	c.BrochureURL = strings.TrimSpace(req.BrochureURL)
	c.AdmissionFormLink = strings.TrimSpace(req.AdmissionFormLink)
	c.SpecializationID = specID
	c.Modules = req.Modules
	if req.ExtraFields != nil {
		c.ExtraFields = *req.ExtraFields
	}
	c.SortOrder = intOr(req.SortOrder, c.SortOrder)
	c.IsActive = boolOr(req.IsActive, c.IsActive)
	c.Normalize()
	return nil
}
