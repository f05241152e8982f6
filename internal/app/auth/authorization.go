package auth

import (
	"context"
	"errors"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
)

// UserLookup is the part of the user repository authorization needs
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAdminRole(ctx context.Context, userID uuid.UUID) (models.Role, error)
}

// AuthorizationService decides whether an authenticated user may use the dashboard
type AuthorizationService struct {
	users UserLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users UserLookup) *AuthorizationService {
	return &AuthorizationService{users: users}
}

// AdminRole returns the dashboard role of userID. Unknown or disabled users and
// users without an admin_users row are refused.
func (s *AuthorizationService) AdminRole(ctx context.Context, userID uuid.UUID) (models.Role, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error getting user in AdminRole")
		return "", err
	}
	if !user.IsActive {
		return "", apperrors.ErrAccountDisabled
	}
	return s.users.GetAdminRole(ctx, userID)
}

// RequireRole returns ErrPermissionDenied unless userID holds one of roles
func (s *AuthorizationService) RequireRole(ctx context.Context, userID uuid.UUID, roles ...models.Role) (models.Role, error) {
	role, err := s.AdminRole(ctx, userID)
	if err != nil {
		return "", err
	}
	for _, r := range roles {
		if role == r {
			return role, nil
		}
	}
	return "", apperrors.NewForbiddenError("Your role does not allow this action")
}
