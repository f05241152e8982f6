package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	TokenRepository          *TokenRepository
	ProfileRepository        *ProfileRepository
	SpecializationRepository *SpecializationRepository
	CourseRepository         *CourseRepository
	TeamRepository           *TeamRepository
	FAQRepository            *FAQRepository
	ContentRepository        *ContentRepository
	MediaRepository          *MediaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		TokenRepository:          NewTokenRepository(db),
		ProfileRepository:        NewProfileRepository(db),
		SpecializationRepository: NewSpecializationRepository(db),
		CourseRepository:         NewCourseRepository(db),
		TeamRepository:           NewTeamRepository(db),
		FAQRepository:            NewFAQRepository(db),
		ContentRepository:        NewContentRepository(db),
		MediaRepository:          NewMediaRepository(db),
	}
}

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// countTable returns the total and active row counts of a table with an is_active column
func countTable(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string) (models.EntityCount, error) {
	sql, args, err := sb.Select("COUNT(*)", "COUNT(*) FILTER (WHERE is_active)").
		From(table).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building count SQL")
		return models.EntityCount{}, fmt.Errorf("failed to build count query: %w", err)
	}

	var count models.EntityCount
	if err := db.QueryRow(ctx, sql, args...).Scan(&count.Total, &count.Active); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error counting rows")
		return models.EntityCount{}, fmt.Errorf("error counting %s: %w", table, err)
	}
	return count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
