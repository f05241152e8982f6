package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/dberrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var teamColumns = []string{
	"id", "name", "position", "bio", "image_url", "category", "sort_order", "is_active", "created_at", "updated_at",
}

// TeamRepository handles team_members database operations
type TeamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db, sb: newBuilder()}
}

func scanTeamMember(row pgx.Row) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.ImageURL, &m.Category, &m.SortOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Create inserts a team member and fills its ID and timestamps
func (r *TeamRepository) Create(ctx context.Context, m *models.TeamMember) error {
	sql, args, err := r.sb.Insert("team_members").
		Columns("name", "position", "bio", "image_url", "category", "sort_order", "is_active").
		Values(m.Name, m.Position, m.Bio, m.ImageURL, string(m.Category), m.SortOrder, m.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create team member SQL")
		return fmt.Errorf("failed to build create team member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("name", m.Name).Msg("Error executing create team member query")
		return fmt.Errorf("error creating team member: %w", err)
	}
	return nil
}

// GetByID retrieves a team member by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	sql, args, err := r.sb.Select(teamColumns...).
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get team member SQL")
		return nil, fmt.Errorf("failed to build get team member query: %w", err)
	}

	m, err := scanTeamMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		logger.Error().Err(err).Str("teamMemberID", id.String()).Msg("Error scanning team member row")
		return nil, fmt.Errorf("error getting team member: %w", err)
	}
	return m, nil
}

// List returns team members ordered by sort_order then name
func (r *TeamRepository) List(ctx context.Context, filter models.TeamFilter) ([]*models.TeamMember, error) {
	q := r.sb.Select(teamColumns...).
		From("team_members").
		OrderBy("sort_order ASC", "name ASC")
	if filter.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Category != "" {
		q = q.Where(squirrel.Eq{"category": string(filter.Category)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list team members SQL")
		return nil, fmt.Errorf("failed to build list team members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list team members query")
		return nil, fmt.Errorf("error querying team members: %w", err)
	}
	defer rows.Close()

	members := []*models.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning team member row during list")
			return nil, fmt.Errorf("error scanning team member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}
	return members, nil
}

// Update writes every editable column of m
func (r *TeamRepository) Update(ctx context.Context, m *models.TeamMember) error {
	sql, args, err := r.sb.Update("team_members").
		SetMap(map[string]interface{}{
			"name":       m.Name,
			"position":   m.Position,
			"bio":        m.Bio,
			"image_url":  m.ImageURL,
			"category":   string(m.Category),
			"sort_order": m.SortOrder,
			"is_active":  m.IsActive,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update team member SQL")
		return fmt.Errorf("failed to build update team member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrTeamMemberNotFound
		}
		logger.Error().Err(err).Str("teamMemberID", m.ID.String()).Msg("Error executing update team member query")
		return fmt.Errorf("error updating team member: %w", err)
	}
	return nil
}

// Delete removes a team member by ID
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("team_members").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete team member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("teamMemberID", id.String()).Msg("Error executing delete team member query")
		return fmt.Errorf("error deleting team member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}
	return nil
}

// Count returns total and active team members
func (r *TeamRepository) Count(ctx context.Context) (models.EntityCount, error) {
	return countTable(ctx, r.db, r.sb, "team_members")
}
