package services

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/filestorage"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/bigbinarytech/institute/internal/pkg/validation"
	"github.com/google/uuid"
)

const mediaDir = "media"

// Actor is the authenticated dashboard user invoking an operation
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

// MediaService manages keyed media assets and implements the storage-media function
type MediaService struct {
	repo           MediaRepository
	storage        filestorage.FileStorage
	profiles       *ProfileService
	maxUploadBytes int64
}

// NewMediaService creates a new MediaService
func NewMediaService(repo MediaRepository, storage filestorage.FileStorage, profiles *ProfileService, maxUploadBytes int64) *MediaService {
	return &MediaService{repo: repo, storage: storage, profiles: profiles, maxUploadBytes: maxUploadBytes}
}

// Resolve looks up an active asset by key. When it is missing the fallback URL is
// returned with Found unset; without a fallback the lookup fails.
func (s *MediaService) Resolve(ctx context.Context, key, fallback string) (*dto.MediaURLResponse, error) {
	a, err := s.repo.GetByKey(ctx, key, true)
	if err == nil {
		return &dto.MediaURLResponse{
			AssetKey:    a.AssetKey,
			URL:         a.AssetURL,
			AltText:     a.AltText,
			Description: a.Description,
			Found:       true,
		}, nil
	}
	if !errors.Is(err, apperrors.ErrMediaAssetNotFound) {
		return nil, err
	}
	if fallback == "" {
		return nil, err
	}
	return &dto.MediaURLResponse{AssetKey: key, URL: fallback}, nil
}

// ListPublic returns active assets, optionally of one section
func (s *MediaService) ListPublic(ctx context.Context, section string) ([]*models.MediaAsset, error) {
	assets, _, err := s.repo.List(ctx, models.MediaFilter{Section: section, ActiveOnly: true})
	return assets, err
}

// Search returns one page of the media library matching section and query
func (s *MediaService) Search(ctx context.Context, section, query string, page, size int) (*dto.MediaListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	assets, total, err := s.repo.List(ctx, models.MediaFilter{
		Section: section,
		Query:   query,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	return &dto.MediaListResponse{
		Assets:     assets,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Dispatch runs one storage-media action on behalf of actor
func (s *MediaService) Dispatch(ctx context.Context, actor Actor, req *dto.StorageMediaRequest) (interface{}, error) {
	switch req.Action {
	case dto.ActionUploadFile:
		return s.UploadFile(ctx, req)
	case dto.ActionDeleteFile:
		return nil, s.DeleteFile(ctx, req.AssetKey, req.StoragePath)
	case dto.ActionUpdateMediaAsset:
		return s.UpdateMetadata(ctx, req)
	case dto.ActionGetMediaAssets:
		return s.listAssets(ctx, req.Section)
	case dto.ActionUploadAvatar:
		userID, err := avatarOwner(actor, req.UserID)
		if err != nil {
			return nil, err
		}
		p, err := s.profiles.UploadAvatar(ctx, userID, req.FileData, req.MimeType)
		if err != nil {
			return nil, err
		}
		return &dto.AvatarResult{URL: p.AvatarURL}, nil
	case dto.ActionDeleteAvatar:
		userID, err := avatarOwner(actor, req.UserID)
		if err != nil {
			return nil, err
		}
		_, err = s.profiles.DeleteAvatar(ctx, userID)
		return nil, err
	}
	return nil, apperrors.NewCustomError(apperrors.ErrUnknownAction, "Unknown action: "+req.Action)
}

// UploadFile stores an image and points the asset key at it. The file previously
// behind the key is removed once the row is updated.
func (s *MediaService) UploadFile(ctx context.Context, req *dto.StorageMediaRequest) (*dto.UploadMediaResult, error) {
	key := strings.TrimSpace(req.AssetKey)
	if !validation.IsAssetKey(key) {
		return nil, apperrors.NewValidationError("asset_key is required and must not contain spaces or start with /")
	}
	section := strings.TrimSpace(req.Section)
	if section == "" {
		section = models.DefaultMediaSection
	}
	if !validation.IsSection(section) {
		return nil, apperrors.NewValidationError("section must be a lowercase identifier")
	}

	img, err := decodeImage(req.FileData, req.MimeType, s.maxUploadBytes)
	if err != nil {
		return nil, err
	}

	var previousPath string
	if prev, err := s.repo.GetByKey(ctx, key, false); err == nil {
		previousPath = prev.StoragePath
	} else if !errors.Is(err, apperrors.ErrMediaAssetNotFound) {
		return nil, err
	}

	stored, err := s.storage.Save(img.Data, path.Join(mediaDir, section), img.Ext, img.MimeType)
	if err != nil {
		return nil, err
	}

	name := firstNonEmpty(req.AssetName, req.FileName, key)
	asset := &models.MediaAsset{
		AssetKey:    key,
		AssetName:   strings.TrimSpace(name),
		AssetType:   models.DefaultAssetType,
		AssetURL:    stored.URL,
		AltText:     strings.TrimSpace(req.AltText),
		Description: strings.TrimSpace(req.Description),
		FileSize:    stored.Size,
		MimeType:    img.MimeType,
		Section:     section,
		StoragePath: stored.Path,
	}
	if err := s.repo.Upsert(ctx, asset); err != nil {
		s.removeFile(stored.Path)
		return nil, err
	}
	if previousPath != "" && previousPath != stored.Path {
		s.removeFile(previousPath)
	}

	logger.Info().Str("assetKey", key).Str("path", stored.Path).Int64("bytes", stored.Size).Msg("Media asset uploaded")
	return &dto.UploadMediaResult{URL: asset.AssetURL, Asset: asset}, nil
}

// DeleteFile removes a stored file together with its asset row. The asset key is
// preferred; a bare storage path must lie in the media library and removes every row
// that points at it. Avatars are only reachable through delete_avatar.
func (s *MediaService) DeleteFile(ctx context.Context, assetKey, storagePath string) error {
	assetKey = strings.TrimSpace(assetKey)
	storagePath = strings.TrimSpace(storagePath)
	if assetKey == "" && storagePath == "" {
		return apperrors.NewValidationError("asset_key or storage_path is required")
	}

	if assetKey != "" {
		a, err := s.repo.GetByKey(ctx, assetKey, false)
		if err != nil {
			return err
		}
		if a.StoragePath != "" {
			if err := s.storage.Delete(a.StoragePath); err != nil {
				return err
			}
		}
		if err := s.repo.DeleteByKey(ctx, assetKey); err != nil {
			return err
		}
		logger.Info().Str("assetKey", assetKey).Msg("Media asset deleted")
		return nil
	}

	storagePath, ok := mediaLibraryPath(storagePath)
	if !ok {
		return apperrors.NewValidationError("storage_path must point to a file in the media library")
	}
	if err := s.storage.Delete(storagePath); err != nil {
		return err
	}
	n, err := s.repo.DeleteByStoragePath(ctx, storagePath)
	if err != nil {
		return err
	}
	logger.Info().Str("path", storagePath).Int64("rows", n).Msg("Stored file deleted")
	return nil
}

// UpdateMetadata edits name, alt text and description of an asset
func (s *MediaService) UpdateMetadata(ctx context.Context, req *dto.StorageMediaRequest) (*models.MediaAsset, error) {
	key := strings.TrimSpace(req.AssetKey)
	if key == "" {
		return nil, apperrors.NewValidationError("asset_key is required")
	}
	return s.repo.UpdateMetadata(ctx, key,
		strings.TrimSpace(req.AssetName),
		strings.TrimSpace(req.AltText),
		strings.TrimSpace(req.Description))
}

func (s *MediaService) listAssets(ctx context.Context, section string) (*dto.MediaAssetsResult, error) {
	section = strings.TrimSpace(section)
	if section != "" && !validation.IsSection(section) {
		return nil, apperrors.NewValidationError("section must be a lowercase identifier")
	}
	assets, _, err := s.repo.List(ctx, models.MediaFilter{Section: section})
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*models.MediaAsset{}
	}
	return &dto.MediaAssetsResult{Data: assets}, nil
}

// mediaLibraryPath cleans p and reports whether it names a file below mediaDir
func mediaLibraryPath(p string) (string, bool) {
	p = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
	if !strings.HasPrefix(p, mediaDir+"/") {
		return "", false
	}
	return p, true
}

func (s *MediaService) removeFile(p string) {
	if err := s.storage.Delete(p); err != nil {
		logger.Warn().Err(err).Str("path", p).Msg("Failed to remove stale file")
	}
}

// avatarOwner resolves whose avatar an action targets. Editors may only change their own.
func avatarOwner(actor Actor, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return actor.UserID, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("user_id must be a valid UUID")
	}
	if id != actor.UserID && actor.Role != models.RoleAdmin {
		return uuid.Nil, apperrors.NewForbiddenError("You can only change your own avatar")
	}
	return id, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
