package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email" example:"admin@bigbinarytech.com"`
	PasswordHash string     `json:"-" db:"password_hash"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// AdminUser grants dashboard access to a user
type AdminUser struct {
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Profile holds display data of a dashboard user
type Profile struct {
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	FullName   string    `json:"fullName" db:"full_name"`
	AvatarURL  string    `json:"avatarUrl" db:"avatar_url"`
	AvatarPath string    `json:"-" db:"avatar_path"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
