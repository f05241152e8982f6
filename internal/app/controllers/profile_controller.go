package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileController lets dashboard users manage their own profile
type ProfileController struct {
	profileService ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// Get returns the caller's profile
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	profile, err := c.profileService.Get(ctx.Request.Context(), actor.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, profile, "")
}

// Update changes the caller's display name
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/profile [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	profile, err := c.profileService.UpdateFullName(ctx.Request.Context(), actor.UserID, req.FullName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, profile, "Profile updated successfully")
}
