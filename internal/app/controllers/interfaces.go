package controllers

import (
	"context"
	"encoding/json"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/app/services"
	"github.com/google/uuid"
)

// Service contracts used by the controllers. Implemented by internal/app/services.

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.CurrentUserResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.User, error)
}

type SpecializationService interface {
	ListPublic(ctx context.Context) ([]*models.Specialization, error)
	ListAll(ctx context.Context) ([]*models.Specialization, error)
	GetDetail(ctx context.Context, slug string) (*dto.SpecializationDetailResponse, error)
	Create(ctx context.Context, req *dto.SpecializationRequest) (*models.Specialization, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.SpecializationRequest) (*models.Specialization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourseService interface {
	ListPublic(ctx context.Context, specializationSlug string) ([]*models.Course, error)
	ListAll(ctx context.Context, specializationSlug string) ([]*models.Course, error)
	GetDetail(ctx context.Context, slug string) (*dto.CourseDetailResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.CourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeamService interface {
	ListPublic(ctx context.Context, category models.TeamCategory) ([]*models.TeamMember, error)
	ListAll(ctx context.Context, category models.TeamCategory) ([]*models.TeamMember, error)
	Create(ctx context.Context, req *dto.TeamMemberRequest) (*models.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.TeamMemberRequest) (*models.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FAQService interface {
	ListPublic(ctx context.Context) ([]*models.FAQ, error)
	ListAll(ctx context.Context) ([]*models.FAQ, error)
	Create(ctx context.Context, req *dto.FAQRequest) (*models.FAQ, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.FAQRequest) (*models.FAQ, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentService interface {
	Get(ctx context.Context, section string) (*models.WebsiteContent, error)
	List(ctx context.Context) ([]*models.WebsiteContent, error)
	Update(ctx context.Context, section string, content json.RawMessage) (*models.WebsiteContent, error)
}

type MediaService interface {
	Resolve(ctx context.Context, key, fallback string) (*dto.MediaURLResponse, error)
	ListPublic(ctx context.Context, section string) ([]*models.MediaAsset, error)
	Search(ctx context.Context, section, query string, page, size int) (*dto.MediaListResponse, error)
	Dispatch(ctx context.Context, actor services.Actor, req *dto.StorageMediaRequest) (interface{}, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*models.Profile, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type SiteService interface {
	Info(ctx context.Context) (*dto.SiteInfo, error)
}
