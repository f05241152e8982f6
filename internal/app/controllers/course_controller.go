package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CourseController serves the course catalog
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListPublic lists active courses
// @Summary List courses
// @Description Active courses of active specializations, optionally of one specialization
// @Tags courses
// @Produce json
// @Param specialization query string false "Specialization slug"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Router /courses [get]
func (c *CourseController) ListPublic(ctx *gin.Context) {
	courses, err := c.courseService.ListPublic(ctx.Request.Context(), ctx.Query("specialization"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, courses, "")
}

// GetBySlug returns the course page
// @Summary Course detail
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailResponse} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{slug} [get]
func (c *CourseController) GetBySlug(ctx *gin.Context) {
	detail, err := c.courseService.GetDetail(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, detail, "")
}

// ListAll lists every course for the dashboard
// @Summary List all courses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param specialization query string false "Specialization slug"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/courses [get]
func (c *CourseController) ListAll(ctx *gin.Context) {
	courses, err := c.courseService.ListAll(ctx.Request.Context(), ctx.Query("specialization"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, courses, "")
}

// GetByID returns a course for editing
// @Summary Get course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [get]
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	course, err := c.courseService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, course, "")
}

// Create adds a course
// @Summary Create course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown specialization"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Router /admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, course, "Course created successfully")
}

// Update edits a course
// @Summary Update course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.CourseRequest true "Course"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown specialization"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Router /admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, course, "Course updated successfully")
}

// Delete removes a course
// @Summary Delete course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.courseService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Course deleted successfully")
}
