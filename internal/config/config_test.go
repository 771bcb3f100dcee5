package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("INSTAGRAM_SYNC_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0 */6 * * *", cfg.Jobs.InstagramSyncSchedule)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 60*time.Second, cfg.Cache.PageTTL)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Empty(t, cfg.Instagram.AccessToken, "missing token is not a startup error")
}

func TestLoadRejectsBadSchedule(t *testing.T) {
	t.Setenv("INSTAGRAM_SYNC_SCHEDULE", "every six hours")
	_, err := Load()
	assert.ErrorContains(t, err, "INSTAGRAM_SYNC_SCHEDULE")
}

func TestProductionNeedsSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PASSWORD", "")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestAllowedOriginsList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://robroy.ca, https://konfusion.ca,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://robroy.ca", "https://konfusion.ca"}, cfg.App.AllowedOrigins)
}

func TestDatabaseConfigRejectsMalformedValues(t *testing.T) {
	t.Setenv("DB_PORT", "five-four-three-two")
	_, err := LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_PORT")

	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_RETRY_DELAY", "soon")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_RETRY_DELAY")
}

func TestDatabaseConfigPoolBounds(t *testing.T) {
	t.Setenv("DB_MIN_CONNECTIONS", "30")
	t.Setenv("DB_MAX_CONNECTIONS", "10")
	_, err := LoadDatabaseConfig()
	assert.ErrorContains(t, err, "exceeds")

	t.Setenv("DB_MIN_CONNECTIONS", "2")
	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, 5432, cfg.Port)
}
