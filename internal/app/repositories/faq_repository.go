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

var faqColumns = []string{"id", "question", "answer", "sort_order", "is_active", "created_at", "updated_at"}

// FAQRepository handles faqs database operations
type FAQRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{db: db, sb: newBuilder()}
}

func scanFAQ(row pgx.Row) (*models.FAQ, error) {
	f := &models.FAQ{}
	err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.SortOrder, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *FAQRepository) Create(ctx context.Context, f *models.FAQ) error {
	sql, args, err := r.sb.Insert("faqs").
		Columns("question", "answer", "sort_order", "is_active").
		Values(f.Question, f.Answer, f.SortOrder, f.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faq query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create faq query")
		return fmt.Errorf("error creating faq: %w", err)
	}
	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FAQ, error) {
	sql, args, err := r.sb.Select(faqColumns...).From("faqs").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faq query: %w", err)
	}

	f, err := scanFAQ(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrFAQNotFound
		}
		logger.Error().Err(err).Str("faqID", id.String()).Msg("Error scanning faq row")
		return nil, fmt.Errorf("error getting faq: %w", err)
	}
	return f, nil
}

func (r *FAQRepository) List(ctx context.Context, activeOnly bool) ([]*models.FAQ, error) {
	q := r.sb.Select(faqColumns...).From("faqs").OrderBy("sort_order ASC", "created_at ASC")
	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faqs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faqs query")
		return nil, fmt.Errorf("error querying faqs: %w", err)
	}
	defer rows.Close()

	faqs := []*models.FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faq row: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faq rows: %w", err)
	}
	return faqs, nil
}

func (r *FAQRepository) Update(ctx context.Context, f *models.FAQ) error {
	sql, args, err := r.sb.Update("faqs").
		SetMap(map[string]interface{}{
			"question":   f.Question,
			"answer":     f.Answer,
			"sort_order": f.SortOrder,
			"is_active":  f.IsActive,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": f.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faq query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.CreatedAt, &f.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrFAQNotFound
		}
		logger.Error().Err(err).Str("faqID", f.ID.String()).Msg("Error executing update faq query")
		return fmt.Errorf("error updating faq: %w", err)
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("faqs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faq query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("faqID", id.String()).Msg("Error executing delete faq query")
		return fmt.Errorf("error deleting faq: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFAQNotFound
	}
	return nil
}

func (r *FAQRepository) Count(ctx context.Context) (models.EntityCount, error) {
	return countTable(ctx, r.db, r.sb, "faqs")
}
