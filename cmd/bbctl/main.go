package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bigbinarytech/institute/internal/bootstrap"
	"github.com/bigbinarytech/institute/internal/config"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bbctl",
	Short: "Operate the Big Binary institute backend",
	Long: `bbctl runs maintenance tasks against the institute database.

Available commands:
  migrate - Apply pending SQL migrations
  seed    - Create default specializations, content and the bootstrap admin
  admin   - Manage dashboard accounts
  courses - Inspect the course catalog
  media   - Inspect the media library`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment overrides from this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show info logs")

	rootCmd.AddCommand(migrateCmd, seedCmd, adminCmd, coursesCmd, mediaCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is an open connection to the configured database
type session struct {
	cfg    *config.Config
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func openSession(ctx context.Context) (*session, error) {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	// logs go to stderr so tables on stdout stay clean
	level := logger.WarnLevel
	if verbose {
		level = logger.InfoLevel
	}
	lgr := logger.Configure(logger.Config{Level: level, Pretty: true, Output: os.Stderr})

	pool, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, pool: pool, logger: lgr}, nil
}

func (s *session) dependencies() (*bootstrap.Dependencies, error) {
	return bootstrap.BuildDependencies(s.cfg, s.pool, s.logger)
}

func (s *session) Close() {
	s.pool.Close()
}
