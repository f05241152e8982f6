package db

import (
	"context"
	"fmt"
	"time"

	"github.com/bigbinarytech/institute/internal/config"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectTimeout = 10 * time.Second
	healthTimeout  = 2 * time.Second
	txTimeout      = 30 * time.Second
)

// PostgresDB wraps the shared connection pool
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// PoolConfig translates cfg.Database into pgxpool settings without connecting.
func PoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	pc.MaxConns = int32(cfg.Database.MaxOpenConns)
	pc.MinConns = int32(cfg.Database.MaxIdleConns)
	if pc.MinConns > pc.MaxConns {
		pc.MinConns = pc.MaxConns
	}

	lifetime, err := helpers.ParseDurationStrict(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	pc.MaxConnLifetime = lifetime

	pc.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Dropping unhealthy pooled connection")
			return false
		}
		return true
	}
	return pc, nil
}

// NewPostgresDB opens the pool and checks it can reach the server
func NewPostgresDB(ctx context.Context, cfg *config.Config) (*PostgresDB, error) {
	pc, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}
	return &PostgresDB{Pool: pool}, nil
}

// Close releases the pool
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// HealthCheck returns a probe that pings pool with a short deadline.
func HealthCheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, healthTimeout)
		defer cancel()
		return pool.Ping(ctx)
	}
}

// TransactionFn runs inside WithTransaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction commits when fn succeeds and rolls back on error or panic.
// Contexts without a deadline get txTimeout.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFn) (err error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, txTimeout)
		defer cancel()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to roll back transaction")
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
