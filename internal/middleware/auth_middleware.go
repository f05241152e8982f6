package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by JWTAuth and AdminRequired
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// TokenValidator parses access tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Authorizer resolves the dashboard role of a user
type Authorizer interface {
	AdminRole(ctx context.Context, userID uuid.UUID) (models.Role, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens     TokenValidator
	authorizer Authorizer
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, authorizer: authorizer}
}

// JWTAuth validates the bearer token and stores the caller in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// links opened outside the dashboard carry the token as ?token=
			authHeader = c.Query("token")
		}
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
				return
			}
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, models.Role(claims.Role))
		c.Next()
	}
}

// AdminRequired checks the caller still holds a dashboard role, refreshing the role
// from the database so revoked access takes effect before the token expires. When
// roles are given the caller must hold one of them.
func (m *AuthMiddleware) AdminRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		role, err := m.authorizer.AdminRole(c.Request.Context(), userID)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if len(roles) > 0 && !hasRole(role, roles) {
			HandleAPIError(c, apperrors.NewForbiddenError("Your role does not allow this action"))
			return
		}

		c.Set(ContextRole, role)
		c.Next()
	}
}

func hasRole(role models.Role, roles []models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserIDFromContext returns the authenticated user id set by JWTAuth
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// RoleFromContext returns the dashboard role of the caller
func RoleFromContext(c *gin.Context) models.Role {
	v, _ := c.Get(ContextRole)
	role, _ := v.(models.Role)
	return role
}
