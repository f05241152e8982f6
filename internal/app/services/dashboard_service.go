package services

import (
	"context"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
)

// Counter is any repository able to report total and active rows
type Counter interface {
	Count(ctx context.Context) (models.EntityCount, error)
}

// DashboardService aggregates counts for the dashboard landing page
type DashboardService struct {
	specializations Counter
	courses         Counter
	team            Counter
	faqs            Counter
	media           Counter
}

func NewDashboardService(specializations, courses, team, faqs, media Counter) *DashboardService {
	return &DashboardService{
		specializations: specializations,
		courses:         courses,
		team:            team,
		faqs:            faqs,
		media:           media,
	}
}

// Stats counts every managed table
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	counts := []struct {
		counter Counter
		dst     *models.EntityCount
	}{
		{s.specializations, &stats.Specializations},
		{s.courses, &stats.Courses},
		{s.team, &stats.TeamMembers},
		{s.faqs, &stats.FAQs},
		{s.media, &stats.MediaAssets},
	}
	for _, c := range counts {
		n, err := c.counter.Count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return stats, nil
}
