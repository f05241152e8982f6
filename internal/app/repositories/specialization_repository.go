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

const (
	specializationSlugConstraint = "specializations_slug_key"
	courseSpecializationFK       = "courses_specialization_id_fkey"
)

var specializationColumns = []string{
	"id", "name", "slug", "description", "image_url", "sort_order", "is_active", "created_at", "updated_at",
}

// SpecializationRepository handles specialization database operations
type SpecializationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSpecializationRepository creates a new SpecializationRepository
func NewSpecializationRepository(db *pgxpool.Pool) *SpecializationRepository {
	return &SpecializationRepository{db: db, sb: newBuilder()}
}

func scanSpecialization(row pgx.Row) (*models.Specialization, error) {
	s := &models.Specialization{}
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.ImageURL, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a specialization and fills its ID and timestamps
func (r *SpecializationRepository) Create(ctx context.Context, s *models.Specialization) error {
	sql, args, err := r.sb.Insert("specializations").
		Columns("name", "slug", "description", "image_url", "sort_order", "is_active").
		Values(s.Name, s.Slug, s.Description, s.ImageURL, s.SortOrder, s.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create specialization SQL")
		return fmt.Errorf("failed to build create specialization query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, specializationSlugConstraint) {
			return apperrors.ErrSpecializationExists
		}
		logger.Error().Err(err).Str("slug", s.Slug).Msg("Error executing create specialization query")
		return fmt.Errorf("error creating specialization: %w", err)
	}
	return nil
}

// GetByID retrieves a specialization regardless of its active flag
func (r *SpecializationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Specialization, error) {
	sql, args, err := r.sb.Select(specializationColumns...).
		From("specializations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get specialization by ID SQL")
		return nil, fmt.Errorf("failed to build get specialization query: %w", err)
	}

	s, err := scanSpecialization(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSpecializationNotFound
		}
		logger.Error().Err(err).Str("specializationID", id.String()).Msg("Error scanning specialization row")
		return nil, fmt.Errorf("error getting specialization by ID: %w", err)
	}
	return s, nil
}

// GetBySlug retrieves a specialization by slug, optionally only when active
func (r *SpecializationRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Specialization, error) {
	where := squirrel.Eq{"slug": slug}
	if activeOnly {
		where["is_active"] = true
	}

	sql, args, err := r.sb.Select(specializationColumns...).
		From("specializations").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get specialization by slug SQL")
		return nil, fmt.Errorf("failed to build get specialization query: %w", err)
	}

	s, err := scanSpecialization(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSpecializationNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error scanning specialization row")
		return nil, fmt.Errorf("error getting specialization by slug: %w", err)
	}
	return s, nil
}

// List returns specializations ordered by sort_order then name
func (r *SpecializationRepository) List(ctx context.Context, activeOnly bool) ([]*models.Specialization, error) {
	q := r.sb.Select(specializationColumns...).
		From("specializations").
		OrderBy("sort_order ASC", "name ASC")
	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list specializations SQL")
		return nil, fmt.Errorf("failed to build list specializations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list specializations query")
		return nil, fmt.Errorf("error querying specializations: %w", err)
	}
	defer rows.Close()

	specializations := []*models.Specialization{}
	for rows.Next() {
		s, err := scanSpecialization(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning specialization row during list")
			return nil, fmt.Errorf("error scanning specialization row: %w", err)
		}
		specializations = append(specializations, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating specialization rows")
		return nil, fmt.Errorf("error iterating specialization rows: %w", err)
	}
	return specializations, nil
}

// Update writes every editable column of s
func (r *SpecializationRepository) Update(ctx context.Context, s *models.Specialization) error {
	sql, args, err := r.sb.Update("specializations").
		SetMap(map[string]interface{}{
			"name":        s.Name,
			"slug":        s.Slug,
			"description": s.Description,
			"image_url":   s.ImageURL,
			"sort_order":  s.SortOrder,
			"is_active":   s.IsActive,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update specialization SQL")
		return fmt.Errorf("failed to build update specialization query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrSpecializationNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, specializationSlugConstraint) {
			return apperrors.ErrSpecializationExists
		}
		logger.Error().Err(err).Str("specializationID", s.ID.String()).Msg("Error executing update specialization query")
		return fmt.Errorf("error updating specialization: %w", err)
	}
	return nil
}

// Delete removes a specialization. Courses still referencing it block the delete.
func (r *SpecializationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("specializations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete specialization SQL")
		return fmt.Errorf("failed to build delete specialization query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, courseSpecializationFK) {
			return apperrors.ErrSpecializationInUse
		}
		logger.Error().Err(err).Str("specializationID", id.String()).Msg("Error executing delete specialization query")
		return fmt.Errorf("error deleting specialization: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSpecializationNotFound
	}
	return nil
}

// Count returns total and active specializations
func (r *SpecializationRepository) Count(ctx context.Context) (models.EntityCount, error) {
	return countTable(ctx, r.db, r.sb, "specializations")
}
