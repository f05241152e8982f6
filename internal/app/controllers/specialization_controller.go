package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SpecializationController serves the specialization catalog
type SpecializationController struct {
	specializationService SpecializationService
}

// NewSpecializationController creates a new SpecializationController
func NewSpecializationController(specializationService SpecializationService) *SpecializationController {
	return &SpecializationController{specializationService: specializationService}
}

// ListPublic lists active specializations
// @Summary List specializations
// @Description Active specializations ordered by sort order, with resolved images
// @Tags specializations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Specialization} "Specializations"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /specializations [get]
func (c *SpecializationController) ListPublic(ctx *gin.Context) {
	list, err := c.specializationService.ListPublic(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, list, "")
}

// GetBySlug returns the specialization page
// @Summary Specialization detail
// @Description Active specialization with its active courses and page metadata
// @Tags specializations
// @Produce json
// @Param slug path string true "Specialization slug"
// @Success 200 {object} dto.APIResponse{data=dto.SpecializationDetailResponse} "Specialization"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Router /specializations/{slug} [get]
func (c *SpecializationController) GetBySlug(ctx *gin.Context) {
	detail, err := c.specializationService.GetDetail(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, detail, "")
}

// ListAll lists every specialization for the dashboard
// @Summary List all specializations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Specialization} "Specializations"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/specializations [get]
func (c *SpecializationController) ListAll(ctx *gin.Context) {
	list, err := c.specializationService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, list, "")
}

// Create adds a specialization
// @Summary Create specialization
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SpecializationRequest true "Specialization"
// @Success 201 {object} dto.APIResponse{data=models.Specialization} "Specialization created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Router /admin/specializations [post]
func (c *SpecializationController) Create(ctx *gin.Context) {
	var req dto.SpecializationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	sp, err := c.specializationService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, sp, "Specialization created successfully")
}

// Update edits a specialization
// @Summary Update specialization
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specialization ID" Format(uuid)
// @Param request body dto.SpecializationRequest true "Specialization"
// @Success 200 {object} dto.APIResponse{data=models.Specialization} "Specialization updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Router /admin/specializations/{id} [put]
func (c *SpecializationController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SpecializationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	sp, err := c.specializationService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, sp, "Specialization updated successfully")
}

// Delete removes a specialization
// @Summary Delete specialization
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specialization ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Specialization deleted"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Failure 409 {object} dto.ErrorResponse "Specialization still has courses"
// @Router /admin/specializations/{id} [delete]
func (c *SpecializationController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.specializationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Specialization deleted successfully")
}
