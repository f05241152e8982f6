package dto

import (
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/google/uuid"
)

// LoginRequest is the dashboard sign-in body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@bigbinarytech.com"`
	Password string `json:"password" binding:"required" example:"change-me"`
}

// RefreshTokenRequest carries a refresh token for rotation or sign-out
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"2592000"`
}

// CurrentUserResponse is the signed-in dashboard user
type CurrentUserResponse struct {
	ID      uuid.UUID       `json:"id"`
	Email   string          `json:"email"`
	Role    models.Role     `json:"role"`
	Profile *models.Profile `json:"profile,omitempty"`
}

// CreateAdminRequest provisions a dashboard account
type CreateAdminRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}
