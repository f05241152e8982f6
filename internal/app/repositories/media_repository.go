package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/dberrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var mediaColumns = []string{
	"id", "asset_key", "asset_name", "asset_type", "asset_url", "alt_text", "description", "file_size",
	"mime_type", "section", "sort_order", "storage_path", "is_active", "created_at", "updated_at",
}

// upsert keeps existing alt text and description when the new upload carries none
const mediaUpsertSuffix = `ON CONFLICT (asset_key) DO UPDATE SET
	asset_name = EXCLUDED.asset_name,
	asset_type = EXCLUDED.asset_type,
	asset_url = EXCLUDED.asset_url,
	alt_text = COALESCE(NULLIF(EXCLUDED.alt_text, ''), media_assets.alt_text),
	description = COALESCE(NULLIF(EXCLUDED.description, ''), media_assets.description),
	file_size = EXCLUDED.file_size,
	mime_type = EXCLUDED.mime_type,
	section = EXCLUDED.section,
	storage_path = EXCLUDED.storage_path,
	is_active = TRUE,
	updated_at = NOW()
RETURNING `

// MediaRepository handles media_assets database operations
type MediaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{db: db, sb: newBuilder()}
}

func scanMediaAsset(row pgx.Row) (*models.MediaAsset, error) {
	a := &models.MediaAsset{}
	err := row.Scan(&a.ID, &a.AssetKey, &a.AssetName, &a.AssetType, &a.AssetURL, &a.AltText, &a.Description,
		&a.FileSize, &a.MimeType, &a.Section, &a.SortOrder, &a.StoragePath, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func mediaWhere(filter models.MediaFilter) squirrel.And {
	where := squirrel.And{}
	if filter.ActiveOnly {
		where = append(where, squirrel.Eq{"is_active": true})
	}
	if filter.Section != "" {
		where = append(where, squirrel.Eq{"section": filter.Section})
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"asset_name": pattern},
			squirrel.ILike{"asset_key": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	return where
}

// GetByKey retrieves an asset by key, optionally only when active
func (r *MediaRepository) GetByKey(ctx context.Context, key string, activeOnly bool) (*models.MediaAsset, error) {
	where := squirrel.Eq{"asset_key": key}
	if activeOnly {
		where["is_active"] = true
	}

	sql, args, err := r.sb.Select(mediaColumns...).From("media_assets").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get media asset query: %w", err)
	}

	a, err := scanMediaAsset(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrMediaAssetNotFound
		}
		logger.Error().Err(err).Str("assetKey", key).Msg("Error scanning media asset row")
		return nil, fmt.Errorf("error getting media asset: %w", err)
	}
	return a, nil
}

// GetByKeys returns the active assets among keys, indexed by asset key. Missing keys
// are simply absent from the map.
func (r *MediaRepository) GetByKeys(ctx context.Context, keys []string) (map[string]*models.MediaAsset, error) {
	found := make(map[string]*models.MediaAsset, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	sql, args, err := r.sb.Select(mediaColumns...).
		From("media_assets").
		Where(squirrel.Eq{"asset_key": keys, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get media assets query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("keys", len(keys)).Msg("Error executing get media assets query")
		return nil, fmt.Errorf("error getting media assets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanMediaAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning media asset: %w", err)
		}
		found[a.AssetKey] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media assets: %w", err)
	}
	return found, nil
}

// List returns matching assets ordered by section, sort_order and name, plus the
// total number of matches ignoring offset and limit.
func (r *MediaRepository) List(ctx context.Context, filter models.MediaFilter) ([]*models.MediaAsset, int64, error) {
	where := mediaWhere(filter)

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("media_assets").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count media assets query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting media assets")
		return nil, 0, fmt.Errorf("error counting media assets: %w", err)
	}

	q := r.sb.Select(mediaColumns...).
		From("media_assets").
		Where(where).
		OrderBy("section ASC", "sort_order ASC", "asset_name ASC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit)).Offset(filter.Offset)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list media assets query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list media assets query")
		return nil, 0, fmt.Errorf("error querying media assets: %w", err)
	}
	defer rows.Close()

	assets := []*models.MediaAsset{}
	for rows.Next() {
		a, err := scanMediaAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning media asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating media asset rows: %w", err)
	}
	return assets, total, nil
}

// Upsert inserts a by asset key or replaces the stored file of the existing row.
// a is refreshed from the stored row.
func (r *MediaRepository) Upsert(ctx context.Context, a *models.MediaAsset) error {
	sql, args, err := r.sb.Insert("media_assets").
		Columns("asset_key", "asset_name", "asset_type", "asset_url", "alt_text", "description",
			"file_size", "mime_type", "section", "sort_order", "storage_path", "is_active").
		Values(a.AssetKey, a.AssetName, a.AssetType, a.AssetURL, a.AltText, a.Description,
			a.FileSize, a.MimeType, a.Section, a.SortOrder, a.StoragePath, true).
		Suffix(mediaUpsertSuffix + strings.Join(mediaColumns, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert media asset query: %w", err)
	}

	stored, err := scanMediaAsset(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("assetKey", a.AssetKey).Msg("Error executing upsert media asset query")
		return fmt.Errorf("error saving media asset: %w", err)
	}
	*a = *stored
	return nil
}

// UpdateMetadata changes the descriptive fields of an asset. Empty values keep the
// current ones.
func (r *MediaRepository) UpdateMetadata(ctx context.Context, key, name, altText, description string) (*models.MediaAsset, error) {
	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if name != "" {
		set["asset_name"] = name
	}
	if altText != "" {
		set["alt_text"] = altText
	}
	if description != "" {
		set["description"] = description
	}

	sql, args, err := r.sb.Update("media_assets").
		SetMap(set).
		Where(squirrel.Eq{"asset_key": key}).
		Suffix("RETURNING " + strings.Join(mediaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update media asset query: %w", err)
	}

	a, err := scanMediaAsset(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrMediaAssetNotFound
		}
		logger.Error().Err(err).Str("assetKey", key).Msg("Error executing update media asset query")
		return nil, fmt.Errorf("error updating media asset: %w", err)
	}
	return a, nil
}

// DeleteByKey removes the asset row with key
func (r *MediaRepository) DeleteByKey(ctx context.Context, key string) error {
	sql, args, err := r.sb.Delete("media_assets").Where(squirrel.Eq{"asset_key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete media asset query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("assetKey", key).Msg("Error executing delete media asset query")
		return fmt.Errorf("error deleting media asset: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMediaAssetNotFound
	}
	return nil
}

// DeleteByStoragePath removes every asset row pointing at path and returns how many went
func (r *MediaRepository) DeleteByStoragePath(ctx context.Context, path string) (int64, error) {
	sql, args, err := r.sb.Delete("media_assets").Where(squirrel.Eq{"storage_path": path}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete media asset query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("storagePath", path).Msg("Error executing delete media asset by path query")
		return 0, fmt.Errorf("error deleting media asset: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Count returns total and active assets
func (r *MediaRepository) Count(ctx context.Context) (models.EntityCount, error) {
	return countTable(ctx, r.db, r.sb, "media_assets")
}
