package dto

import (
	"github.com/bigbinarytech/institute/internal/app/models"
)

// Actions accepted by the storage-media function
const (
	ActionUploadFile       = "upload_file"
	ActionDeleteFile       = "delete_file"
	ActionUpdateMediaAsset = "update_media_asset"
	ActionGetMediaAssets   = "get_media_assets"
	ActionUploadAvatar     = "upload_avatar"
	ActionDeleteAvatar     = "delete_avatar"
)

// StorageMediaRequest is the body of POST /admin/functions/storage-media.
// Which fields are required depends on Action.
type StorageMediaRequest struct {
	Action      string `json:"action" binding:"required" example:"upload_file"`
	FileData    string `json:"file_data,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	MimeType    string `json:"mime_type,omitempty" example:"image/png"`
	AssetKey    string `json:"asset_key,omitempty" example:"navbar_logo"`
	AssetName   string `json:"asset_name,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	Description string `json:"description,omitempty"`
	Section     string `json:"section,omitempty" example:"general"`
	StoragePath string `json:"storage_path,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// UploadMediaResult is returned by upload_file
type UploadMediaResult struct {
	URL   string             `json:"url"`
	Asset *models.MediaAsset `json:"asset"`
}

// AvatarResult is returned by upload_avatar
type AvatarResult struct {
	URL string `json:"url"`
}

// MediaAssetsResult is returned by get_media_assets
type MediaAssetsResult struct {
	Data []*models.MediaAsset `json:"data"`
}

// MediaURLResponse resolves an asset key for page rendering. Found is false when
// the fallback URL was returned instead of a stored asset.
type MediaURLResponse struct {
	AssetKey    string `json:"assetKey"`
	URL         string `json:"url"`
	AltText     string `json:"altText"`
	Description string `json:"description"`
	Found       bool   `json:"found"`
}

// MediaListResponse is one page of the admin media library
type MediaListResponse struct {
	Assets     []*models.MediaAsset `json:"assets"`
	Pagination PaginationInfo       `json:"pagination"`
}
