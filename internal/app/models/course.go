package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseModule is one block of a course syllabus
type CourseModule struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Topics      []string `json:"topics"`
}

// CourseExtraFields holds the optional detail-page sections of a course
type CourseExtraFields struct {
	LearningOutcomes []string `json:"learning_outcomes"`
	Prerequisites    []string `json:"prerequisites"`
	WhatYouGet       []string `json:"what_you_get"`
	AdditionalInfo   string   `json:"additional_info"`
}

// Course is a single offered program. Modules and ExtraFields are stored as jsonb.
type Course struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	Title             string            `json:"title" db:"title" example:"Machine Learning Bootcamp"`
	Slug              string            `json:"slug" db:"slug" example:"machine-learning-bootcamp"`
	Summary           string            `json:"summary" db:"summary"`
	Introduction      string            `json:"introduction" db:"introduction"`
	Duration          string            `json:"duration" db:"duration" example:"3 months"`
	Price             float64           `json:"price" db:"price" example:"450"`
	Audience          string            `json:"audience" db:"audience"`
	ImageURL          string            `json:"imageUrl" db:"image_url"`
	BrochureURL       string            `json:"brochureUrl" db:"brochure_url"`
	AdmissionFormLink string            `json:"admissionFormLink" db:"admission_form_link"`
	SpecializationID  uuid.UUID         `json:"specializationId" db:"specialization_id"`
	Modules           []CourseModule    `json:"modules" db:"modules"`
	ExtraFields       CourseExtraFields `json:"extraFields" db:"extra_fields"`
	SortOrder         int               `json:"sortOrder" db:"sort_order"`
	IsActive          bool              `json:"isActive" db:"is_active"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`

	// Joined from specializations, read only
	SpecializationName string `json:"specializationName,omitempty" db:"-"`
	SpecializationSlug string `json:"specializationSlug,omitempty" db:"-"`
}

// Normalize replaces nil collections so they serialize as empty arrays
func (c *Course) Normalize() {
	if c.Modules == nil {
		c.Modules = []CourseModule{}
	}
	for i := range c.Modules {
		if c.Modules[i].Topics == nil {
			c.Modules[i].Topics = []string{}
		}
	}
	if c.ExtraFields.LearningOutcomes == nil {
		c.ExtraFields.LearningOutcomes = []string{}
	}
	if c.ExtraFields.Prerequisites == nil {
		c.ExtraFields.Prerequisites = []string{}
	}
	if c.ExtraFields.WhatYouGet == nil {
		c.ExtraFields.WhatYouGet = []string{}
	}
}
