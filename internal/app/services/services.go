package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/auth"
	"github.com/google/uuid"
)

// Repository contracts consumed by the services. The pgx implementations live in
// internal/app/repositories; tests use in-memory fakes.

type SpecializationRepository interface {
	Create(ctx context.Context, s *models.Specialization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Specialization, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Specialization, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Specialization, error)
	Update(ctx context.Context, s *models.Specialization) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (models.EntityCount, error)
}

type CourseRepository interface {
	Create(ctx context.Context, c *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (models.EntityCount, error)
}

type TeamRepository interface {
	Create(ctx context.Context, m *models.TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error)
	List(ctx context.Context, filter models.TeamFilter) ([]*models.TeamMember, error)
	Update(ctx context.Context, m *models.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (models.EntityCount, error)
}

type FAQRepository interface {
	Create(ctx context.Context, f *models.FAQ) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FAQ, error)
	List(ctx context.Context, activeOnly bool) ([]*models.FAQ, error)
	Update(ctx context.Context, f *models.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (models.EntityCount, error)
}

type ContentRepository interface {
	Get(ctx context.Context, section string) (*models.WebsiteContent, error)
	List(ctx context.Context) ([]*models.WebsiteContent, error)
	Upsert(ctx context.Context, section string, content json.RawMessage) (*models.WebsiteContent, error)
}

type MediaRepository interface {
	GetByKey(ctx context.Context, key string, activeOnly bool) (*models.MediaAsset, error)
	GetByKeys(ctx context.Context, keys []string) (map[string]*models.MediaAsset, error)
	List(ctx context.Context, filter models.MediaFilter) ([]*models.MediaAsset, int64, error)
	Upsert(ctx context.Context, a *models.MediaAsset) error
	UpdateMetadata(ctx context.Context, key, name, altText, description string) (*models.MediaAsset, error)
	DeleteByKey(ctx context.Context, key string) error
	DeleteByStoragePath(ctx context.Context, path string) (int64, error)
	Count(ctx context.Context) (models.EntityCount, error)
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	GetAdminRole(ctx context.Context, userID uuid.UUID) (models.Role, error)
	CountAdmins(ctx context.Context) (int64, error)
	CreateAdmin(ctx context.Context, u *models.User, role models.Role, fullName string) error
}

type TokenRepository interface {
	CreateToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

type ProfileRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*models.Profile, error)
	SetAvatar(ctx context.Context, userID uuid.UUID, url, path string) (*models.Profile, error)
}

// TokenIssuer mints access and refresh tokens
type TokenIssuer interface {
	GenerateTokenPair(userID uuid.UUID, email, role string) (*auth.TokenPair, error)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
