package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"venue-content-backend/internal/infrastructure/database"
)

// strictEnv parses settings where a malformed value must stop startup rather than
// silently fall back. The first failure is kept.
type strictEnv struct {
	err error
}

func (s *strictEnv) int(key, def string) int {
	n, err := cast.ToIntE(getEnv(key, def))
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("invalid %s: %w", key, err)
	}
	return n
}

func (s *strictEnv) duration(key, def string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, def))
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("invalid %s: %w", key, err)
	}
	return d
}

// LoadDatabaseConfig reads the pgx pool settings from the environment.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var env strictEnv

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     env.int("DB_PORT", "5432"),
		Username: getEnv("DB_USER", "venue"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "venue_content"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(env.int("DB_MAX_CONNECTIONS", "25")),
		MinConns:          int32(env.int("DB_MIN_CONNECTIONS", "5")),
		MaxConnLifetime:   env.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   env.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: env.duration("DB_HEALTH_CHECK_PERIOD", "1m"),

		MaxRetries:     env.int("DB_MAX_RETRIES", "5"),
		RetryDelay:     env.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout: env.duration("DB_CONNECT_TIMEOUT", "10s"),
	}
	if env.err != nil {
		return nil, env.err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}
