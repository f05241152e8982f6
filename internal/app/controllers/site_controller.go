package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SiteController serves site-wide data and dashboard counters
type SiteController struct {
	siteService      SiteService
	dashboardService DashboardService
}

func NewSiteController(siteService SiteService, dashboardService DashboardService) *SiteController {
	return &SiteController{siteService: siteService, dashboardService: dashboardService}
}

// Info returns navigation and page metadata
// @Summary Site info
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SiteInfo} "Site info"
// @Router /site [get]
func (c *SiteController) Info(ctx *gin.Context) {
	info, err := c.siteService.Info(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, info, "")
}

// Stats returns the dashboard counters
// @Summary Dashboard stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Counters"
// @Router /admin/dashboard/stats [get]
func (c *SiteController) Stats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats, "")
}
