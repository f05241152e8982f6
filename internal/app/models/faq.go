package models

import (
	"time"

	"github.com/google/uuid"
)

type FAQ struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	SortOrder int       `json:"sortOrder" db:"sort_order"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
