package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bigbinarytech/institute/internal/bootstrap"
	"github.com/bigbinarytech/institute/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	// base64 uploads make request bodies large, slow clients get some slack
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Server owns the HTTP listener and the database pool behind it.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer loads configuration, migrates and seeds the database and wires the router.
// A failed seed is logged and does not stop startup.
func NewServer(ctx context.Context, configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	pool, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Server{config: cfg, dbPool: pool, logger: lgr}
	if err := s.prepare(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Server) prepare(ctx context.Context) error {
	if _, err := bootstrap.RunMigrations(ctx, s.config, s.dbPool, s.logger); err != nil {
		return err
	}

	deps, err := bootstrap.BuildDependencies(s.config, s.dbPool, s.logger)
	if err != nil {
		return fmt.Errorf("failed to setup dependencies: %w", err)
	}

	res, err := bootstrap.RunSeed(ctx, s.config, deps)
	if err != nil {
		s.logger.Error().Err(err).Msg("Seeding finished with errors, continuing startup")
	}
	if res != nil {
		s.logger.Info().
			Int("specializations", res.Specializations).
			Int("contentSections", res.ContentSections).
			Bool("adminCreated", res.AdminCreated).
			Msg("Seed complete")
	}

	s.router = bootstrap.SetupRouter(s.config, deps)
	return nil
}

// Run serves until ctx is cancelled, SIGINT or SIGTERM arrives, or the listener fails,
// then shuts down.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Str("mode", s.config.Server.Mode).Msg("HTTP server listening")
		listenErr <- s.http.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closePool()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests and closes the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var err error
	if s.http != nil {
		if err = s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}
	s.closePool()
	s.logger.Info().Msg("Server stopped")
	return err
}

func (s *Server) closePool() {
	if s.dbPool != nil {
		s.dbPool.Close()
		s.dbPool = nil
	}
}
