package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port              string `yaml:"port" env:"SERVER_PORT"`
		Mode              string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath       string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicBaseURL     string `yaml:"public_base_url" env:"SERVER_PUBLIC_BASE_URL"`
		SiteURL           string `yaml:"site_url" env:"SITE_URL"`
		EnrollmentFormURL string `yaml:"enrollment_form_url" env:"ENROLLMENT_FORM_URL"`
		MaxUploadMB       int    `yaml:"max_upload_mb" env:"MAX_UPLOAD_MB"`
		MaxAvatarMB       int    `yaml:"max_avatar_mb" env:"MAX_AVATAR_MB"`
		MigrationsDir     string `yaml:"migrations_dir" env:"MIGRATIONS_DIR"`
		// Comma separated; empty allows any origin
		AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// Admin is the account seeded on first start when no admin exists yet
	Admin struct {
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
		FullName string `yaml:"full_name" env:"ADMIN_FULL_NAME"`
	} `yaml:"admin"`
}

// LoadConfig reads .env, the YAML file at configPath (optional) and environment
// overrides, in that order, then validates the result.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	setDefaults(cfg)

	if _, err := os.Stat(configPath); err == nil {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "development"
	cfg.Server.StoragePath = "uploads"
	cfg.Server.SiteURL = "https://bigbinarytech.com"
	cfg.Server.MaxUploadMB = 10
	cfg.Server.MaxAvatarMB = 5
	cfg.Server.MigrationsDir = "migrations"

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.DBName = "institute"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxIdleConns = 2
	cfg.Database.MaxOpenConns = 10
	cfg.Database.ConnMaxLifetime = "1h"

	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.RefreshTokenExpiration = "720h"
	cfg.JWT.Issuer = "bigbinarytech.com"

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	cfg.Admin.FullName = "Site Administrator"
}

func validateConfig(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if _, err := helpers.ParseDurationStrict(cfg.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}
	if _, err := helpers.ParseDurationStrict(cfg.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT refresh token expiration format: %w", err)
	}
	if _, err := helpers.ParseDurationStrict(cfg.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}
	if cfg.Server.MaxUploadMB <= 0 || cfg.Server.MaxAvatarMB <= 0 {
		return fmt.Errorf("upload limits must be positive")
	}
	if cfg.Server.StoragePath == "" {
		return fmt.Errorf("storage path is required")
	}
	return nil
}

// GetPostgresConnectionString returns the pgx connection URL. Credentials are escaped.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// UploadsBaseURL is the public URL prefix of stored files
func (c *Config) UploadsBaseURL() string {
	base := strings.TrimRight(c.Server.PublicBaseURL, "/")
	if base == "" {
		base = "http://localhost:" + c.Server.Port
	}
	return base + "/uploads"
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// CORSOrigins splits Server.AllowedOrigins into trimmed, non-empty origins
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.Server.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
