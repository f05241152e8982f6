package seed

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	appModels "github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// SpecializationStore is the part of the specialization repository the seeder needs
type SpecializationStore interface {
	Count(ctx context.Context) (appModels.EntityCount, error)
	Create(ctx context.Context, s *appModels.Specialization) error
}

// ContentStore is the part of the content repository the seeder needs
type ContentStore interface {
	InsertIfMissing(ctx context.Context, section string, content json.RawMessage) (bool, error)
}

// AdminBootstrapper creates the first admin account
type AdminBootstrapper interface {
	EnsureBootstrapAdmin(ctx context.Context, email, password, fullName string) (bool, error)
}

// AdminAccount is the configured bootstrap admin. An empty email or password disables it.
type AdminAccount struct {
	Email    string
	Password string
	FullName string
}

// Result summarizes what a run created
type Result struct {
	Specializations int
	ContentSections int
	AdminCreated    bool
}

var defaultSpecializations = []appModels.Specialization{
	{Name: "Software Engineering", Description: "Build production software from the first line of code to deployment."},
	{Name: "Data Science", Description: "Turn data into decisions with statistics, Python and machine learning."},
	{Name: "Cybersecurity", Description: "Defend networks and applications against modern threats."},
	{Name: "Digital Marketing", Description: "Grow brands online with content, search and analytics."},
}

// DefaultContent is the initial JSON document of each home page section
var DefaultContent = map[string]interface{}{
	"hero": map[string]interface{}{
		"title":    "Launch your tech career with Big Binary",
		"subtitle": "Hands-on programs taught by practitioners, built for the job market.",
	},
	"highlights": map[string]interface{}{
		"items": []map[string]string{
			{"icon": "briefcase", "title": "Market ready", "description": "Curricula shaped by hiring partners."},
			{"icon": "lightbulb", "title": "Innovation", "description": "Project work on real problems."},
			{"icon": "users", "title": "Internships", "description": "Placements with partner companies."},
		},
	},
	"why_choose_us": map[string]interface{}{
		"items": []map[string]string{
			{"icon": "award", "title": "Expert instructors", "description": "Learn from working engineers."},
			{"icon": "clock", "title": "Flexible schedules", "description": "Evening and weekend cohorts."},
		},
	},
	"contact": map[string]string{
		"email":   "info@bigbinarytech.com",
		"phone":   "",
		"address": "",
	},
	"commitment": map[string]interface{}{
		"title":       "Our commitment",
		"description": "We measure our success by the careers of our graduates.",
		"features":    []string{"Digital literacy", "Industry partnerships", "Career support"},
	},
}

// Seeder creates default data that the public site expects to exist
type Seeder struct {
	specializations SpecializationStore
	content         ContentStore
	admins          AdminBootstrapper
	logger          zerolog.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(specializations SpecializationStore, content ContentStore, admins AdminBootstrapper, logger zerolog.Logger) *Seeder {
	return &Seeder{
		specializations: specializations,
		content:         content,
		admins:          admins,
		logger:          logger.With().Str("component", "seed").Logger(),
	}
}

// Run creates default specializations when there are none, every missing content
// section and the bootstrap admin when no admin exists. Existing rows are never touched.
// Failures of one step do not stop the others; they are joined in the returned error.
func (s *Seeder) Run(ctx context.Context, admin AdminAccount) (*Result, error) {
	s.logger.Info().Msg("Checking/creating default data...")
	result := &Result{}
	var finalErr error

	count, err := s.specializations.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error counting specializations")
		finalErr = errors.Join(finalErr, err)
	} else if count.Total == 0 {
		for i, def := range defaultSpecializations {
			sp := def
			sp.Slug = helpers.GenerateSlug(sp.Name)
			sp.SortOrder = i + 1
			sp.IsActive = true
			if err := s.specializations.Create(ctx, &sp); err != nil {
				s.logger.Error().Err(err).Str("slug", sp.Slug).Msg("Error creating default specialization")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			result.Specializations++
		}
	}

	for _, section := range contentSections() {
		raw, err := json.Marshal(DefaultContent[section])
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created, err := s.content.InsertIfMissing(ctx, section, raw)
		if err != nil {
			s.logger.Error().Err(err).Str("section", section).Msg("Error creating default content")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			result.ContentSections++
		}
	}

	created, err := s.admins.EnsureBootstrapAdmin(ctx, admin.Email, admin.Password, admin.FullName)
	if err != nil {
		s.logger.Error().Err(err).Str("email", admin.Email).Msg("Error creating bootstrap admin")
		finalErr = errors.Join(finalErr, err)
	} else if created {
		result.AdminCreated = true
		s.logger.Info().Str("email", admin.Email).Msg("Bootstrap admin created")
	} else if admin.Email == "" {
		s.logger.Warn().Msg("No bootstrap admin configured")
	}

	s.logger.Info().
		Int("specializations", result.Specializations).
		Int("contentSections", result.ContentSections).
		Msg("Default data check/creation finished")
	return result, finalErr
}

func contentSections() []string {
	sections := make([]string, 0, len(DefaultContent))
	for section := range DefaultContent {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}
