package dto

import (
	"encoding/json"

	"github.com/bigbinarytech/institute/internal/app/models"
)

// UpdateContentRequest replaces the JSON document of a section
type UpdateContentRequest struct {
	Content json.RawMessage `json:"content" binding:"required" swaggertype:"object"`
}

// SiteInfo is the data shared by every public page
type SiteInfo struct {
	SiteURL           string              `json:"siteUrl" example:"https://bigbinarytech.com"`
	EnrollmentFormURL string              `json:"enrollmentFormUrl"`
	Navigation        []NavItem           `json:"navigation"`
	Pages             map[string]PageMeta `json:"pages"`
}

// NavItem is one specialization entry of the navigation menu
type NavItem struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Path string `json:"path" example:"/specializations/data-science"`
}

// DashboardStats are the counters on the dashboard landing page
type DashboardStats struct {
	Specializations models.EntityCount `json:"specializations"`
	Courses         models.EntityCount `json:"courses"`
	TeamMembers     models.EntityCount `json:"teamMembers"`
	FAQs            models.EntityCount `json:"faqs"`
	MediaAssets     models.EntityCount `json:"mediaAssets"`
}

// UpdateProfileRequest edits the signed-in user's profile
type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,max=200"`
}
