package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PUBLIC_RATE_LIMIT", "")
	t.Setenv("REDIS_URL", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 60, cfg.PublicRateLimit)
	assert.Equal(t, "0 * * * *", cfg.ExpireRequestsCron)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PUBLIC_RATE_LIMIT", "120")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 120, cfg.PublicRateLimit)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.False(t, cfg.IsDev())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PUBLIC_RATE_LIMIT", "lots")
	t.Setenv("DB_MAX_OPEN_CONNS", "-3")

	cfg := Load()

	assert.Equal(t, 60, cfg.PublicRateLimit)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
}
