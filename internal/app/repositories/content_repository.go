package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/dberrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository handles website_content database operations
type ContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db, sb: newBuilder()}
}

// Get returns the document of one section
func (r *ContentRepository) Get(ctx context.Context, section string) (*models.WebsiteContent, error) {
	sql, args, err := r.sb.Select("section", "content", "updated_at").
		From("website_content").
		Where(squirrel.Eq{"section": section}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get content query: %w", err)
	}

	wc := &models.WebsiteContent{}
	var raw []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&wc.Section, &raw, &wc.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrContentNotFound
		}
		logger.Error().Err(err).Str("section", section).Msg("Error scanning website content row")
		return nil, fmt.Errorf("error getting website content: %w", err)
	}
	wc.Content = json.RawMessage(raw)
	return wc, nil
}

// List returns every section ordered by name
func (r *ContentRepository) List(ctx context.Context) ([]*models.WebsiteContent, error) {
	sql, args, err := r.sb.Select("section", "content", "updated_at").
		From("website_content").
		OrderBy("section ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list content query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list website content query")
		return nil, fmt.Errorf("error querying website content: %w", err)
	}
	defer rows.Close()

	sections := []*models.WebsiteContent{}
	for rows.Next() {
		wc := &models.WebsiteContent{}
		var raw []byte
		if err := rows.Scan(&wc.Section, &raw, &wc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning website content row: %w", err)
		}
		wc.Content = json.RawMessage(raw)
		sections = append(sections, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating website content rows: %w", err)
	}
	return sections, nil
}

// Upsert creates or replaces the document of a section
func (r *ContentRepository) Upsert(ctx context.Context, section string, content json.RawMessage) (*models.WebsiteContent, error) {
	sql, args, err := r.sb.Insert("website_content").
		Columns("section", "content").
		Values(section, string(content)).
		Suffix("ON CONFLICT (section) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW() RETURNING section, content, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert content query: %w", err)
	}

	wc := &models.WebsiteContent{}
	var raw []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&wc.Section, &raw, &wc.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("section", section).Msg("Error executing upsert website content query")
		return nil, fmt.Errorf("error saving website content: %w", err)
	}
	wc.Content = json.RawMessage(raw)
	return wc, nil
}

// InsertIfMissing stores content for section unless the section already exists.
// It reports whether a row was written.
func (r *ContentRepository) InsertIfMissing(ctx context.Context, section string, content json.RawMessage) (bool, error) {
	sql, args, err := r.sb.Insert("website_content").
		Columns("section", "content").
		Values(section, string(content)).
		Suffix("ON CONFLICT (section) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert content query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error inserting website content: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
