package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/app/services"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// TeamController serves team and leadership members
type TeamController struct {
	teamService TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// ListPublic lists active team members
// @Summary List team members
// @Tags team
// @Produce json
// @Param category query string false "team or leadership"
// @Success 200 {object} dto.APIResponse{data=[]models.TeamMember} "Team members"
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Router /team [get]
func (c *TeamController) ListPublic(ctx *gin.Context) {
	category, err := services.ParseCategory(ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	members, err := c.teamService.ListPublic(ctx.Request.Context(), category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, members, "")
}

// ListAll lists every team member
// @Summary List all team members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param category query string false "team or leadership"
// @Success 200 {object} dto.APIResponse{data=[]models.TeamMember} "Team members"
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Router /admin/team [get]
func (c *TeamController) ListAll(ctx *gin.Context) {
	category, err := services.ParseCategory(ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	members, err := c.teamService.ListAll(ctx.Request.Context(), category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, members, "")
}

// Create adds a team member
// @Summary Create team member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TeamMemberRequest true "Team member"
// @Success 201 {object} dto.APIResponse{data=models.TeamMember} "Team member created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/team [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var req dto.TeamMemberRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	member, err := c.teamService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, member, "Team member created successfully")
}

// Update edits a team member
// @Summary Update team member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID" Format(uuid)
// @Param request body dto.TeamMemberRequest true "Team member"
// @Success 200 {object} dto.APIResponse{data=models.TeamMember} "Team member updated"
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /admin/team/{id} [put]
func (c *TeamController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TeamMemberRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	member, err := c.teamService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, member, "Team member updated successfully")
}

// Delete removes a team member
// @Summary Delete team member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Team member deleted"
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /admin/team/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.teamService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Team member deleted successfully")
}
