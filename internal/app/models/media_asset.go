package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaAsset is a keyed reference to an uploaded image used across pages
type MediaAsset struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AssetKey    string    `json:"assetKey" db:"asset_key" example:"navbar_logo"`
	AssetName   string    `json:"assetName" db:"asset_name"`
	AssetType   string    `json:"assetType" db:"asset_type" example:"image"`
	AssetURL    string    `json:"assetUrl" db:"asset_url"`
	AltText     string    `json:"altText" db:"alt_text"`
	Description string    `json:"description" db:"description"`
	FileSize    int64     `json:"fileSize" db:"file_size"`
	MimeType    string    `json:"mimeType" db:"mime_type" example:"image/png"`
	Section     string    `json:"section" db:"section" example:"general"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	StoragePath string    `json:"storagePath" db:"storage_path"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
