package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/auth"
	"github.com/bigbinarytech/institute/internal/pkg/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const invalidCredentialsMessage = "Invalid email or password"

// AuthService handles dashboard sign-in and admin provisioning
type AuthService struct {
	userRepo    UserRepository
	tokenRepo   TokenRepository
	profileRepo ProfileRepository
	issuer      TokenIssuer
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	profileRepo ProfileRepository,
	issuer TokenIssuer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		issuer:      issuer,
		logger:      logger,
	}
}

// Login checks credentials of a dashboard user and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	role, err := s.userRepo.GetAdminRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, user, role)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Failed to record last login")
	}
	s.logger.Info().Str("userID", user.ID.String()).Str("role", string(role)).Msg("User signed in")
	return resp, nil
}

// Refresh rotates a refresh token: the old one is revoked and a new pair issued
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, err := s.tokenRepo.GetUserID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	role, err := s.userRepo.GetAdminRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// revoking is the claim: a concurrent refresh with the same token loses here
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrTokenRevoked) || errors.Is(err, apperrors.ErrTokenNotFound) {
			s.logger.Warn().Str("userID", userID.String()).Msg("Refresh token reused during rotation")
			return nil, apperrors.ErrTokenRevoked
		}
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}
	return s.issueTokens(ctx, user, role)
}

// Logout revokes a refresh token. Unknown and already revoked tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return apperrors.ErrTokenInvalid
	}
	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) && !errors.Is(err, apperrors.ErrTokenRevoked) {
		return err
	}
	return nil
}

// LogoutAll revokes every refresh token of userID
func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}

// Me returns the signed-in user with role and profile
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.CurrentUserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	role, err := s.userRepo.GetAdminRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CurrentUserResponse{ID: user.ID, Email: user.Email, Role: role, Profile: profile}, nil
}

// CreateAdmin provisions a dashboard account with a hashed password
func (s *AuthService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("A valid email is required")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Password must be at least %d characters long", validation.PasswordMinLength))
	}
	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if role != models.RoleAdmin && role != models.RoleEditor {
		return nil, apperrors.NewValidationError("Role must be admin or editor")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: hash, IsActive: true}
	if err := s.userRepo.CreateAdmin(ctx, user, role, strings.TrimSpace(req.FullName)); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(err, "An account with this email already exists")
		}
		return nil, err
	}
	s.logger.Info().Str("userID", user.ID.String()).Str("role", string(role)).Msg("Admin account created")
	return user, nil
}

// EnsureBootstrapAdmin creates the configured admin when no admin exists yet.
// It reports whether an account was created.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email, password, fullName string) (bool, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return false, nil
	}
	n, err := s.userRepo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.CreateAdmin(ctx, &dto.CreateAdminRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
		Role:     models.RoleAdmin,
	}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User, role models.Role) (*dto.TokenResponse, error) {
	pair, err := s.issuer.GenerateTokenPair(user.ID, user.Email, string(role))
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.CreateToken(ctx, pair.RefreshToken, user.ID, pair.RefreshExpiresAt); err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        pair.ExpiresIn,
		RefreshExpiresIn: pair.RefreshExpiresIn,
	}, nil
}
