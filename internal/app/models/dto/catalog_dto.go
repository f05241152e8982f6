package dto

import (
	"github.com/bigbinarytech/institute/internal/app/models"
)

// SpecializationRequest is the create/update body of a specialization.
// An empty slug is generated from the name.
type SpecializationRequest struct {
	Name        string `json:"name" binding:"required,max=200" example:"Data Science"`
	Slug        string `json:"slug" binding:"omitempty,max=200" example:"data-science"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   *int   `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

// SpecializationDetailResponse backs the specialization detail page
type SpecializationDetailResponse struct {
	Specialization *models.Specialization `json:"specialization"`
	ImageURL       string                 `json:"imageUrl"`
	Courses        []*models.Course       `json:"courses"`
	Meta           PageMeta               `json:"meta"`
}

// CourseRequest is the create/update body of a course.
// An empty slug is generated from the title.
type CourseRequest struct {
	Title             string                    `json:"title" binding:"required,max=200" example:"Python for Data Analysis"`
	Slug              string                    `json:"slug" binding:"omitempty,max=200"`
	Summary           string                    `json:"summary"`
	Introduction      string                    `json:"introduction"`
	Duration          string                    `json:"duration" example:"3 months"`
	Price             float64                   `json:"price" binding:"gte=0" example:"450"`
	Audience          string                    `json:"audience"`
	ImageURL          string                    `json:"imageUrl"`
	BrochureURL       string                    `json:"brochureUrl"`
	AdmissionFormLink string                    `json:"admissionFormLink"`
	SpecializationID  string                    `json:"specializationId" binding:"required,uuid"`
	Modules           []models.CourseModule     `json:"modules" binding:"omitempty,dive"`
	ExtraFields       *models.CourseExtraFields `json:"extraFields"`
	SortOrder         *int                      `json:"sortOrder"`
	IsActive          *bool                     `json:"isActive"`
}

// CourseDetailResponse backs the course detail page
type CourseDetailResponse struct {
	Course   *models.Course `json:"course"`
	ImageURL string         `json:"imageUrl"`
	Meta     PageMeta       `json:"meta"`
}

// TeamMemberRequest is the create/update body of a team member
type TeamMemberRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Position  string `json:"position" binding:"required,max=200"`
	Bio       string `json:"bio"`
	ImageURL  string `json:"imageUrl"`
	Category  string `json:"category" binding:"omitempty,oneof=team leadership" example:"leadership"`
	SortOrder *int   `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// FAQRequest is the create/update body of an FAQ entry
type FAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	SortOrder *int   `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}
