package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ContentController serves the editable JSON sections of the website
type ContentController struct {
	contentService ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// List returns every content section
// @Summary List website content
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.WebsiteContent} "Sections"
// @Router /content [get]
func (c *ContentController) List(ctx *gin.Context) {
	sections, err := c.contentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, sections, "")
}

// Get returns one content section
// @Summary Get website content section
// @Tags content
// @Produce json
// @Param section path string true "Section name" example(hero)
// @Success 200 {object} dto.APIResponse{data=models.WebsiteContent} "Section"
// @Failure 400 {object} dto.ErrorResponse "Invalid section name"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /content/{section} [get]
func (c *ContentController) Get(ctx *gin.Context) {
	section, err := c.contentService.Get(ctx.Request.Context(), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, section, "")
}

// Update replaces the JSON document of a section, creating it if needed
// @Summary Update website content section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section name"
// @Param request body dto.UpdateContentRequest true "Section content"
// @Success 200 {object} dto.APIResponse{data=models.WebsiteContent} "Section updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid section or content"
// @Router /admin/content/{section} [put]
func (c *ContentController) Update(ctx *gin.Context) {
	var req dto.UpdateContentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.contentService.Update(ctx.Request.Context(), ctx.Param("section"), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, section, "Content updated successfully")
}
