package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/dberrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepository handles refresh token database operations
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db, sb: newBuilder()}
}

// CreateToken stores a refresh token for userID
func (r *TokenRepository) CreateToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("token", "user_id", "expires_at", "is_revoked").
		Values(token, userID, expiresAt, false).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create token SQL")
		return fmt.Errorf("failed to build create token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "refresh_tokens_token_key") {
			logger.Warn().Msg("Attempted to create duplicate refresh token")
			return apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error executing create token query")
		return fmt.Errorf("error creating token: %w", err)
	}
	return nil
}

// GetUserID returns the owner of a live refresh token. Revoked and expired tokens
// return ErrTokenRevoked and ErrTokenExpired.
func (r *TokenRepository) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	sql, args, err := r.sb.Select("user_id", "expires_at", "is_revoked").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build get token query: %w", err)
	}

	var (
		userID    uuid.UUID
		expiresAt time.Time
		isRevoked bool
	)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&userID, &expiresAt, &isRevoked); err != nil {
		if dberrors.IsNoRows(err) {
			return uuid.Nil, apperrors.ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error scanning token row")
		return uuid.Nil, fmt.Errorf("error retrieving token: %w", err)
	}

	if isRevoked {
		return uuid.Nil, apperrors.ErrTokenRevoked
	}
	if expiresAt.Before(time.Now()) {
		return uuid.Nil, apperrors.ErrTokenExpired
	}
	return userID, nil
}

// RevokeToken marks a live refresh token as revoked. Only one caller can revoke a
// given token; the rest get ErrTokenRevoked, which makes it safe as a rotation claim.
func (r *TokenRepository) RevokeToken(ctx context.Context, token string) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("is_revoked", true).
		Where(squirrel.Eq{"token": token, "is_revoked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke token query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revoke token query")
		return fmt.Errorf("error revoking token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenRevoked
	}
	return nil
}

// RevokeAllUserTokens revokes every active token of a user
func (r *TokenRepository) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("is_revoked", true).
		Where(squirrel.Eq{"user_id": userID, "is_revoked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke all user tokens query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error executing revoke all user tokens query")
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}
