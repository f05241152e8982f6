package services

import (
	"context"
	"path"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/filestorage"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
)

const avatarDir = "avatars"

// ProfileService manages display names and avatars of dashboard users
type ProfileService struct {
	repo           ProfileRepository
	storage        filestorage.FileStorage
	maxAvatarBytes int64
}

// NewProfileService creates a new ProfileService
func NewProfileService(repo ProfileRepository, storage filestorage.FileStorage, maxAvatarBytes int64) *ProfileService {
	return &ProfileService{repo: repo, storage: storage, maxAvatarBytes: maxAvatarBytes}
}

// Get returns the profile of userID, creating it on first access
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// UpdateFullName changes the display name of userID
func (s *ProfileService) UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*models.Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("Full name is required")
	}
	if _, err := s.repo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.UpdateFullName(ctx, userID, fullName)
}

// UploadAvatar stores a new avatar image for userID and removes the previous file
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, fileData, mimeType string) (*models.Profile, error) {
	img, err := decodeImage(fileData, mimeType, s.maxAvatarBytes)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.Save(img.Data, path.Join(avatarDir, userID.String()), img.Ext, img.MimeType)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetAvatar(ctx, userID, stored.URL, stored.Path)
	if err != nil {
		s.removeFile(stored.Path)
		return nil, err
	}
	if current.AvatarPath != "" && current.AvatarPath != stored.Path {
		s.removeFile(current.AvatarPath)
	}
	logger.Info().Str("userID", userID.String()).Str("path", stored.Path).Msg("Avatar uploaded")
	return updated, nil
}

// DeleteAvatar removes the avatar file of userID and clears the profile fields
func (s *ProfileService) DeleteAvatar(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	current, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.AvatarPath != "" {
		if err := s.storage.Delete(current.AvatarPath); err != nil {
			return nil, err
		}
	}
	return s.repo.SetAvatar(ctx, userID, "", "")
}

func (s *ProfileService) removeFile(p string) {
	if err := s.storage.Delete(p); err != nil {
		logger.Warn().Err(err).Str("path", p).Msg("Failed to remove stale file")
	}
}
