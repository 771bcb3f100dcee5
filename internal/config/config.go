package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"venue-content-backend/internal/infrastructure/database"
	"venue-content-backend/internal/infrastructure/instagram"
	"venue-content-backend/internal/infrastructure/storage"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config is the whole application configuration, populated from the environment.
type Config struct {
	App       AppConfig
	Database  *database.DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	MinIO     storage.MinIOConfig
	Upload    UploadConfig
	Instagram instagram.Config
	Jobs      JobConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	AllowedOrigins []string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type UploadConfig struct {
	MaxBytes     int64 // multipart memory limit per request
	MaxDimension int   // longest image side kept after resize
}

type JobConfig struct {
	InstagramSyncSchedule string // standard 5-field cron, "" disables
}

type CacheConfig struct {
	PageTTL  time.Duration // fresh venue page
	StaleTTL time.Duration // fallback copy served when the store is down
}

// Load reads the environment. Instagram credentials are optional here; a sync without
// them fails on its own.
func Load() (*Config, error) {
	db, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Venue Content API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: db,
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", defaultJWTSecret),
			Issuer: getEnv("JWT_ISSUER", ""),
		},
		MinIO: storage.MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:     getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:        getEnv("MINIO_BUCKET", "venue-content"),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		Upload: UploadConfig{
			MaxBytes:     int64(getEnvInt("UPLOAD_MAX_MB", 10)) << 20,
			MaxDimension: getEnvInt("UPLOAD_MAX_DIMENSION", 2000),
		},
		Instagram: instagram.Config{
			BaseURL:     getEnv("INSTAGRAM_API_URL", "https://graph.instagram.com"),
			AccessToken: getEnv("INSTAGRAM_ACCESS_TOKEN", ""),
			Limit:       getEnvInt("INSTAGRAM_FETCH_LIMIT", 50),
			Timeout:     getEnvDuration("INSTAGRAM_TIMEOUT", 10*time.Second),
		},
		Jobs: JobConfig{
			InstagramSyncSchedule: getEnv("INSTAGRAM_SYNC_SCHEDULE", "0 */6 * * *"),
		},
		Cache: CacheConfig{
			PageTTL:  getEnvDuration("PAGE_CACHE_TTL", 60*time.Second),
			StaleTTL: getEnvDuration("PAGE_STALE_TTL", 24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if s := c.Jobs.InstagramSyncSchedule; s != "" {
		if _, err := cron.ParseStandard(s); err != nil {
			return fmt.Errorf("INSTAGRAM_SYNC_SCHEDULE %q: %w", s, err)
		}
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_MB must be positive")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
