package models

import (
	"time"

	"github.com/google/uuid"
)

// Specialization is a program grouping one or more courses
type Specialization struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" example:"Artificial Intelligence"`
	Slug        string    `json:"slug" db:"slug" example:"artificial-intelligence"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
