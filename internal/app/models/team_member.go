package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person shown on the about page
type TeamMember struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Position  string       `json:"position" db:"position"`
	Bio       string       `json:"bio" db:"bio"`
	ImageURL  string       `json:"imageUrl" db:"image_url"`
	Category  TeamCategory `json:"category" db:"category" example:"team"`
	SortOrder int          `json:"sortOrder" db:"sort_order"`
	IsActive  bool         `json:"isActive" db:"is_active"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`
}
