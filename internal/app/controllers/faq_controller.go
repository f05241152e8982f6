package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// FAQController serves frequently asked questions
type FAQController struct {
	faqService FAQService
}

// NewFAQController creates a new FAQController
func NewFAQController(faqService FAQService) *FAQController {
	return &FAQController{faqService: faqService}
}

// ListPublic lists active FAQs
// @Summary List FAQs
// @Tags faqs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FAQ} "FAQs"
// @Router /faqs [get]
func (c *FAQController) ListPublic(ctx *gin.Context) {
	faqs, err := c.faqService.ListPublic(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, faqs, "")
}

// @Summary List all FAQs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FAQ} "FAQs"
// @Router /admin/faqs [get]
func (c *FAQController) ListAll(ctx *gin.Context) {
	faqs, err := c.faqService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, faqs, "")
}

// @Summary Create FAQ
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FAQRequest true "FAQ"
// @Success 201 {object} dto.APIResponse{data=models.FAQ} "FAQ created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/faqs [post]
func (c *FAQController) Create(ctx *gin.Context) {
	var req dto.FAQRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faq, err := c.faqService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, faq, "FAQ created successfully")
}

// @Summary Update FAQ
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID" Format(uuid)
// @Param request body dto.FAQRequest true "FAQ"
// @Success 200 {object} dto.APIResponse{data=models.FAQ} "FAQ updated"
// @Failure 404 {object} dto.ErrorResponse "FAQ not found"
// @Router /admin/faqs/{id} [put]
func (c *FAQController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.FAQRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faq, err := c.faqService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, faq, "FAQ updated successfully")
}

// @Summary Delete FAQ
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "FAQ deleted"
// @Failure 404 {object} dto.ErrorResponse "FAQ not found"
// @Router /admin/faqs/{id} [delete]
func (c *FAQController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.faqService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "FAQ deleted successfully")
}
