package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthController handles dashboard authentication
type AuthController struct {
	authService AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login signs a dashboard user in
// @Summary Sign in
// @Description Authenticates an admin or editor and returns an access and refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Signed in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 403 {object} dto.ErrorResponse "Account is not a dashboard user"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, tokens, "Signed in successfully")
}

// RefreshToken rotates a refresh token
// @Summary Refresh tokens
// @Description Revokes the given refresh token and issues a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Tokens refreshed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Refresh token invalid, expired or revoked"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, tokens, "")
}

// Logout revokes a refresh token
// @Summary Sign out
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse "Signed out"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Signed out successfully")
}

// LogoutAll revokes every refresh token of the caller
// @Summary Sign out everywhere
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Signed out of all sessions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/logout-all [post]
func (c *AuthController) LogoutAll(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	if err := c.authService.LogoutAll(ctx.Request.Context(), actor.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Signed out of all sessions")
}

// Me returns the signed-in user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CurrentUserResponse} "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a dashboard user"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	me, err := c.authService.Me(ctx.Request.Context(), actor.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, me, "")
}

// CreateAdmin provisions a dashboard account
// @Summary Create dashboard user
// @Description Creates an admin or editor account. Only admins may call this.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Account"
// @Success 201 {object} dto.APIResponse{data=models.User} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/users [post]
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, user, "Account created successfully")
}
