package bootstrap

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	appAuth "github.com/bigbinarytech/institute/internal/app/auth"
	appControllers "github.com/bigbinarytech/institute/internal/app/controllers"
	appMigrations "github.com/bigbinarytech/institute/internal/app/migrations"
	appRepos "github.com/bigbinarytech/institute/internal/app/repositories"
	appRoutes "github.com/bigbinarytech/institute/internal/app/routes"
	appServices "github.com/bigbinarytech/institute/internal/app/services"
	"github.com/bigbinarytech/institute/internal/config"
	"github.com/bigbinarytech/institute/internal/db"
	appMiddleware "github.com/bigbinarytech/institute/internal/middleware"
	pkgAuth "github.com/bigbinarytech/institute/internal/pkg/auth"
	"github.com/bigbinarytech/institute/internal/pkg/filestorage"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/bigbinarytech/institute/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DefaultConfigPath is used when no config file is given
const DefaultConfigPath = "configs/config.yaml"

// UploadsURLPath is where stored files are served
const UploadsURLPath = "/uploads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	FileStorage *filestorage.LocalStorage
	JWTService  *pkgAuth.JWTService
	Logger      zerolog.Logger
	HealthCheck func(context.Context) error

	AuthService           *appServices.AuthService
	SpecializationService *appServices.SpecializationService
	CourseService         *appServices.CourseService
	TeamService           *appServices.TeamService
	FAQService            *appServices.FAQService
	ContentService        *appServices.ContentService
	MediaService          *appServices.MediaService
	ProfileService        *appServices.ProfileService
	DashboardService      *appServices.DashboardService
	SiteService           *appServices.SiteService

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  level,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})
	lgr.Info().Str("logLevel", string(level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies pending migrations from cfg.Server.MigrationsDir
func RunMigrations(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (int, error) {
	migrator := appMigrations.NewMigrator(pool, lgr)
	applied, err := migrator.MigrateFromDirectory(ctx, cfg.Server.MigrationsDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations up to date")
	return applied, nil
}

// RunSeed creates default data and the bootstrap admin
func RunSeed(ctx context.Context, cfg *config.Config, deps *Dependencies) (*seed.Result, error) {
	seeder := seed.NewSeeder(
		deps.Repos.SpecializationRepository,
		deps.Repos.ContentRepository,
		deps.AuthService,
		deps.Logger,
	)
	return seeder.Run(ctx, seed.AdminAccount{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		FullName: cfg.Admin.FullName,
	})
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, HealthCheck: db.HealthCheck(pool)}
	deps.Repos = appRepos.NewRepositories(pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.UploadsBaseURL())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	site := appServices.SiteSettings{
		SiteURL:           cfg.Server.SiteURL,
		EnrollmentFormURL: cfg.Server.EnrollmentFormURL,
	}
	repos := deps.Repos

	deps.AuthService = appServices.NewAuthService(
		repos.UserRepository,
		repos.TokenRepository,
		repos.ProfileRepository,
		deps.JWTService,
		lgr,
	)
	deps.SpecializationService = appServices.NewSpecializationService(
		repos.SpecializationRepository, repos.CourseRepository, repos.MediaRepository, site)
	deps.CourseService = appServices.NewCourseService(repos.CourseRepository, repos.SpecializationRepository, repos.MediaRepository, site)
	deps.TeamService = appServices.NewTeamService(repos.TeamRepository)
	deps.FAQService = appServices.NewFAQService(repos.FAQRepository)
	deps.ContentService = appServices.NewContentService(repos.ContentRepository)
	deps.ProfileService = appServices.NewProfileService(repos.ProfileRepository, deps.FileStorage, megabytes(cfg.Server.MaxAvatarMB))
	deps.MediaService = appServices.NewMediaService(repos.MediaRepository, deps.FileStorage, deps.ProfileService, megabytes(cfg.Server.MaxUploadMB))
	deps.DashboardService = appServices.NewDashboardService(
		repos.SpecializationRepository,
		repos.CourseRepository,
		repos.TeamRepository,
		repos.FAQRepository,
		repos.MediaRepository,
	)
	deps.SiteService = appServices.NewSiteService(repos.SpecializationRepository, site)

	authz := appAuth.NewAuthorizationService(repos.UserRepository)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, authz)

	deps.Controllers = appRoutes.Controllers{
		Auth:           appControllers.NewAuthController(deps.AuthService),
		Specialization: appControllers.NewSpecializationController(deps.SpecializationService),
		Course:         appControllers.NewCourseController(deps.CourseService),
		Team:           appControllers.NewTeamController(deps.TeamService),
		FAQ:            appControllers.NewFAQController(deps.FAQService),
		Content:        appControllers.NewContentController(deps.ContentService),
		Media:          appControllers.NewMediaController(deps.MediaService),
		Profile:        appControllers.NewProfileController(deps.ProfileService),
		Site:           appControllers.NewSiteController(deps.SiteService, deps.DashboardService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.CORSOrigins()),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appRoutes.Options{
		UploadsDir:         cfg.Server.StoragePath,
		UploadsURLPath:     UploadsURLPath,
		HealthCheck:        deps.HealthCheck,
		MaxUploadBodyBytes: StorageMediaBodyLimit(cfg),
	})
	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}
	return router
}

// room for the action, keys and other JSON fields around file_data
const storageMediaJSONSlack = 64 << 10

// StorageMediaBodyLimit is the largest storage-media request that can still carry the
// biggest allowed file as base64.
func StorageMediaBodyLimit(cfg *config.Config) int64 {
	largest := max(megabytes(cfg.Server.MaxUploadMB), megabytes(cfg.Server.MaxAvatarMB))
	return int64(base64.StdEncoding.EncodedLen(int(largest))) + storageMediaJSONSlack
}

func megabytes(n int) int64 {
	return int64(n) << 20
}
