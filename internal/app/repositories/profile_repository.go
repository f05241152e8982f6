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

const profileUserFK = "profiles_user_id_fkey"

var profileColumns = []string{"user_id", "full_name", "avatar_url", "avatar_path", "created_at", "updated_at"}

// ProfileRepository handles profiles database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db, sb: newBuilder()}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(&p.UserID, &p.FullName, &p.AvatarURL, &p.AvatarPath, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// GetOrCreate returns the profile of userID, creating an empty one first if needed
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	insertSQL, insertArgs, err := r.sb.Insert("profiles").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build ensure profile query: %w", err)
	}
	if _, err := r.db.Exec(ctx, insertSQL, insertArgs...); err != nil {
		if dberrors.IsForeignKeyError(err, profileUserFK) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error ensuring profile")
		return nil, fmt.Errorf("error ensuring profile: %w", err)
	}

	sql, args, err := r.sb.Select(profileColumns...).From("profiles").Where(squirrel.Eq{"user_id": userID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile: %w", err)
	}
	return p, nil
}

// UpdateFullName sets the display name of a profile
func (r *ProfileRepository) UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*models.Profile, error) {
	return r.update(ctx, userID, map[string]interface{}{"full_name": fullName})
}

// SetAvatar stores the avatar URL and storage path; empty values clear the avatar
func (r *ProfileRepository) SetAvatar(ctx context.Context, userID uuid.UUID, url, path string) (*models.Profile, error) {
	return r.update(ctx, userID, map[string]interface{}{"avatar_url": url, "avatar_path": path})
}

func (r *ProfileRepository) update(ctx context.Context, userID uuid.UUID, set map[string]interface{}) (*models.Profile, error) {
	set["updated_at"] = squirrel.Expr("NOW()")
	sql, args, err := r.sb.Update("profiles").
		SetMap(set).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, full_name, avatar_url, avatar_path, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update profile query: %w", err)
	}

	p, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error executing update profile query")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return p, nil
}
