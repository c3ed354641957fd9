package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_MAX_RETRIES", "")
	t.Setenv("OUTBOX_POLL_INTERVAL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("DB_AUTO_MIGRATE", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5, cfg.DBMaxRetries)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_MAX_RETRIES", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2, cfg.DBMaxRetries)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.RequireJWTSecret())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_RETRIES", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_MAX_RETRIES", "1")
	t.Setenv("OUTBOX_POLL_INTERVAL", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestConfig_Require(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.RequireJWTSecret())
	assert.Error(t, cfg.RequireKafka())
}

func TestDBConfig_DSN(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Contains(t, cfg.DB.DSN(), "dbname=")
}

func TestLoad_InvalidAutoMigrate(t *testing.T) {
	t.Setenv("DB_AUTO_MIGRATE", "sometimes")

	_, err := Load()

	assert.Error(t, err)
}
