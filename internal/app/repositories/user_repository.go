package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/db"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/dberrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userEmailConstraint = "users_email_key"

var userColumns = []string{"id", "email", "password_hash", "is_active", "last_login_at", "created_at", "updated_at"}

// UserRepository handles users and admin_users database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db, sb: newBuilder()}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepository) getUser(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	u, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return u, nil
}

// GetByEmail looks a user up by case-insensitive email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"lower(email)": normalizeEmail(email)})
}

// GetByID looks a user up by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id})
}

// UpdateLastLogin stamps last_login_at with the current time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Update("users").
		Set("last_login_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", id.String()).Msg("Error updating last login")
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// GetAdminRole returns the dashboard role of a user, or ErrNotAdmin when the user
// has no admin_users row.
func (r *UserRepository) GetAdminRole(ctx context.Context, userID uuid.UUID) (models.Role, error) {
	sql, args, err := r.sb.Select("role").From("admin_users").Where(squirrel.Eq{"user_id": userID}).Limit(1).ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build get admin role query: %w", err)
	}

	var role models.Role
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&role); err != nil {
		if dberrors.IsNoRows(err) {
			return "", apperrors.ErrNotAdmin
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error scanning admin role")
		return "", fmt.Errorf("error getting admin role: %w", err)
	}
	return role, nil
}

// CountAdmins returns the number of admin_users rows
func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("admin_users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count admins query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return n, nil
}

// CreateAdmin inserts the user, its admin_users row and its profile in one transaction.
// u is filled with the stored ID and timestamps.
func (r *UserRepository) CreateAdmin(ctx context.Context, u *models.User, role models.Role, fullName string) error {
	u.Email = normalizeEmail(u.Email)
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("users").
			Columns("email", "password_hash", "is_active").
			Values(u.Email, u.PasswordHash, true).
			Suffix("RETURNING id, is_active, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, userEmailConstraint) {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Str("email", u.Email).Msg("Error executing create user query")
			return fmt.Errorf("error creating user: %w", err)
		}

		sql, args, err = r.sb.Insert("admin_users").
			Columns("user_id", "role").
			Values(u.ID, string(role)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create admin query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error granting admin role: %w", err)
		}

		sql, args, err = r.sb.Insert("profiles").
			Columns("user_id", "full_name").
			Values(u.ID, fullName).
			Suffix("ON CONFLICT (user_id) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create profile query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}
		return nil
	})
}
