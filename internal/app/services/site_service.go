package services

import (
	"context"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
)

// SiteService serves the data shared by every public page
type SiteService struct {
	specializations SpecializationRepository
	settings        SiteSettings
}

func NewSiteService(specializations SpecializationRepository, settings SiteSettings) *SiteService {
	return &SiteService{specializations: specializations, settings: settings}
}

// Info returns navigation built from active specializations plus site URLs and page meta
func (s *SiteService) Info(ctx context.Context) (*dto.SiteInfo, error) {
	list, err := s.specializations.List(ctx, true)
	if err != nil {
		return nil, err
	}

	nav := make([]dto.NavItem, 0, len(list))
	for _, sp := range list {
		nav = append(nav, dto.NavItem{Name: sp.Name, Slug: sp.Slug, Path: "/specializations/" + sp.Slug})
	}

	return &dto.SiteInfo{
		SiteURL:           s.settings.SiteURL,
		EnrollmentFormURL: s.settings.EnrollmentFormURL,
		Navigation:        nav,
		Pages:             s.settings.StaticPages(),
	}, nil
}
