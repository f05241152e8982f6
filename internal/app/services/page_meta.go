package services

import (
	"strings"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
)

const (
	BaseTitle       = "Big Binary International Institute - Big Binary Tech"
	BaseDescription = "Big Binary International Institute (Big Binary Tech) offers comprehensive professional training, courses, and education programs."
	BaseKeywords    = "Big Binary, Big Binary Tech, Big Binary International Institute, professional training, education, courses"
)

// SiteSettings are the public URLs pages are built against
type SiteSettings struct {
	SiteURL           string
	EnrollmentFormURL string
}

// PageMeta builds the SEO block of a page. Empty fields fall back to the site defaults.
func (s SiteSettings) PageMeta(title, description, keywords, path string) dto.PageMeta {
	meta := dto.PageMeta{
		Title:       BaseTitle,
		Description: strings.TrimSpace(description),
		Keywords:    strings.TrimSpace(keywords),
		Canonical:   strings.TrimRight(s.SiteURL, "/") + path,
	}
	if title = strings.TrimSpace(title); title != "" {
		meta.Title = title + " | " + BaseTitle
	}
	if meta.Description == "" {
		meta.Description = BaseDescription
	}
	if meta.Keywords == "" {
		meta.Keywords = BaseKeywords
	}
	return meta
}

// SpecializationMeta is the SEO block of /specializations/<slug>
func (s SiteSettings) SpecializationMeta(sp *models.Specialization) dto.PageMeta {
	return s.PageMeta(
		sp.Name,
		sp.Description+" - Explore "+sp.Name+" courses at Big Binary Tech International Institute.",
		"Big Binary "+sp.Name+", Big Binary Tech "+sp.Name+" courses, "+sp.Name+" training, Big Binary specialization",
		"/specializations/"+sp.Slug,
	)
}

// CourseMeta is the SEO block of /courses/<slug>
func (s SiteSettings) CourseMeta(c *models.Course) dto.PageMeta {
	intro := c.Summary
	if intro == "" {
		intro = c.Introduction
	}
	return s.PageMeta(
		c.Title,
		intro+" - Enroll in "+c.Title+" at Big Binary Tech International Institute.",
		"Big Binary "+c.Title+", Big Binary Tech "+c.Title+" course, "+c.Title+" training, Big Binary course, "+c.Title+" certification",
		"/courses/"+c.Slug,
	)
}

// StaticPages is the SEO block of every fixed marketing page keyed by route name
func (s SiteSettings) StaticPages() map[string]dto.PageMeta {
	return map[string]dto.PageMeta{
		"home": s.PageMeta("", "", "", "/"),
		"about": s.PageMeta("About Us",
			"Learn about Big Binary Tech International Institute - our mission, vision, leadership team, and commitment to providing world-class technology education and training programs.",
			"Big Binary about, Big Binary Tech team, Big Binary leadership, Big Binary mission, technology education institute",
			"/about"),
		"careers": s.PageMeta("Careers",
			"Join Big Binary Tech team. Explore career opportunities in technology education, teaching, and administration. Make a global impact with Big Binary.",
			"Big Binary careers, Big Binary Tech jobs, education careers, teaching jobs, Big Binary employment, technology education jobs",
			"/careers"),
		"co-working": s.PageMeta("Co-Working Space",
			"Premium co-working space at Big Binary Tech International Institute in DHA Phase 2. Modern facilities, high-speed internet, and productive environment for professionals and teams.",
			"Big Binary co-working, Big Binary Tech workspace, DHA Phase 2 co-working, professional workspace, Big Binary office space",
			"/co-working"),
		"franchise": s.PageMeta("Franchise Opportunity",
			"Become a Big Binary Tech International Institute franchise partner. Join our network and bring world-class technology education to your city. Download franchise brochure and learn about partnership opportunities.",
			"Big Binary franchise, Big Binary Tech franchise opportunity, education franchise, technology training franchise, Big Binary partnership",
			"/franchise"),
		"specializations": s.PageMeta("Specializations", "", "", "/specializations"),
		"courses":         s.PageMeta("Courses", "", "", "/courses"),
	}
}
