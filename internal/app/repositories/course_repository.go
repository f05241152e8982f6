package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/dberrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseSlugConstraint = "courses_slug_key"

var courseColumns = []string{
	"c.id", "c.title", "c.slug", "c.summary", "c.introduction", "c.duration", "c.price", "c.audience",
	"c.image_url", "c.brochure_url", "c.admission_form_link", "c.specialization_id", "c.modules",
	"c.extra_fields", "c.sort_order", "c.is_active", "c.created_at", "c.updated_at",
	"s.name", "s.slug",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db, sb: newBuilder()}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		From("courses c").
		Join("specializations s ON s.id = c.specialization_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Slug, &c.Summary, &c.Introduction, &c.Duration, &c.Price, &c.Audience,
		&c.ImageURL, &c.BrochureURL, &c.AdmissionFormLink, &c.SpecializationID, &c.Modules,
		&c.ExtraFields, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		&c.SpecializationName, &c.SpecializationSlug,
	)
	if err != nil {
		return nil, err
	}
	c.Normalize()
	return c, nil
}

// mapCourseWriteError translates constraint violations raised by insert/update
func mapCourseWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, courseSlugConstraint):
		return apperrors.ErrCourseExists
	case dberrors.IsForeignKeyError(err, courseSpecializationFK):
		return apperrors.ErrInvalidSpecialization
	default:
		return nil
	}
}

// Create inserts a course and fills its ID and timestamps
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	c.Normalize()
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "slug", "summary", "introduction", "duration", "price", "audience", "image_url",
			"brochure_url", "admission_form_link", "specialization_id", "modules", "extra_fields",
			"sort_order", "is_active").
		Values(c.Title, c.Slug, c.Summary, c.Introduction, c.Duration, c.Price, c.Audience, c.ImageURL,
			c.BrochureURL, c.AdmissionFormLink, c.SpecializationID, c.Modules, c.ExtraFields,
			c.SortOrder, c.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if mapped := mapCourseWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("slug", c.Slug).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course regardless of its active flag
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return c, nil
}

// GetBySlug retrieves a course by slug. With activeOnly both the course and its
// specialization must be active.
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Course, error) {
	where := squirrel.Eq{"c.slug": slug}
	if activeOnly {
		where["c.is_active"] = true
		where["s.is_active"] = true
	}

	sql, args, err := r.selectCourses().
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by slug SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by slug: %w", err)
	}
	return c, nil
}

// List returns courses ordered by sort_order then title
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	q := r.selectCourses().OrderBy("c.sort_order ASC", "c.title ASC")
	if filter.ActiveOnly {
		q = q.Where(squirrel.Eq{"c.is_active": true, "s.is_active": true})
	}
	if filter.SpecializationSlug != "" {
		q = q.Where(squirrel.Eq{"s.slug": filter.SpecializationSlug})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// Update writes every editable column of c
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	c.Normalize()
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"title":               c.Title,
			"slug":                c.Slug,
			"summary":             c.Summary,
			"introduction":        c.Introduction,
			"duration":            c.Duration,
			"price":               c.Price,
			"audience":            c.Audience,
			"image_url":           c.ImageURL,
			"brochure_url":        c.BrochureURL,
			"admission_form_link": c.AdmissionFormLink,
			"specialization_id":   c.SpecializationID,
			"modules":             c.Modules,
			"extra_fields":        c.ExtraFields,
			"sort_order":          c.SortOrder,
			"is_active":           c.IsActive,
			"updated_at":          squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrCourseNotFound
		}
		if mapped := mapCourseWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("courseID", c.ID.String()).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Count returns total and active courses
func (r *CourseRepository) Count(ctx context.Context) (models.EntityCount, error) {
	return countTable(ctx, r.db, r.sb, "courses")
}
