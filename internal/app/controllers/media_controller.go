package controllers

import (
	"net/http"
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// MediaController serves media assets and the storage-media function
type MediaController struct {
	mediaService MediaService
}

// NewMediaController creates a new MediaController
func NewMediaController(mediaService MediaService) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// ListPublic lists active media assets
// @Summary List media assets
// @Tags media
// @Produce json
// @Param section query string false "Section"
// @Success 200 {object} dto.APIResponse{data=[]models.MediaAsset} "Assets"
// @Router /media [get]
func (c *MediaController) ListPublic(ctx *gin.Context) {
	assets, err := c.mediaService.ListPublic(ctx.Request.Context(), ctx.Query("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, assets, "")
}

// Resolve returns the URL behind an asset key
// @Summary Resolve media asset
// @Description Returns the active asset for the key, or the fallback URL when there is none
// @Tags media
// @Produce json
// @Param key path string true "Asset key" example(navbar_logo)
// @Param fallback query string false "URL used when the asset is missing"
// @Success 200 {object} dto.APIResponse{data=dto.MediaURLResponse} "Resolved URL"
// @Failure 404 {object} dto.ErrorResponse "Asset not found and no fallback"
// @Router /media/{key} [get]
func (c *MediaController) Resolve(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("key"), "/")
	resolved, err := c.mediaService.Resolve(ctx.Request.Context(), key, ctx.Query("fallback"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, resolved, "")
}

// Search pages through the media library
// @Summary Search media library
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param section query string false "Section"
// @Param q query string false "Matches key, name or description"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(24)
// @Success 200 {object} dto.APIResponse{data=dto.MediaListResponse} "Assets"
// @Router /admin/media [get]
func (c *MediaController) Search(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	result, err := c.mediaService.Search(ctx.Request.Context(), ctx.Query("section"), ctx.Query("q"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, result, "")
}

// StorageMedia runs one storage-media action
// @Summary Storage media function
// @Description Uploads, deletes and lists media assets and avatars. The action field selects the operation:
// @Description upload_file, delete_file, update_media_asset, get_media_assets, upload_avatar, delete_avatar.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StorageMediaRequest true "Action and its fields"
// @Success 200 {object} dto.APIResponse "Action result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown action"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to change this avatar"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 415 {object} dto.ErrorResponse "Only image files are allowed"
// @Router /admin/functions/storage-media [post]
func (c *MediaController) StorageMedia(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.StorageMediaRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.mediaService.Dispatch(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, result, "")
}
