package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 6, cfg.Dashboard.ItemsPerPage)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestNewConfigEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CHARTY_DASHBOARD_ITEMS_PER_PAGE", "10")
	t.Setenv("CHARTY_REDIS_ADDR", "localhost:6379")
	t.Setenv("CHARTY_POSTGRES_DSN", "postgres://u:p@db:5432/charty")
	t.Setenv("CHARTY_CACHE_TTL", "30s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Dashboard.ItemsPerPage)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "postgres://u:p@db:5432/charty", cfg.Postgres.GetDSN())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "app:\n  env: production\nlogging:\n  level: warn\nauth:\n  jwt_secret: 0123456789abcdef0123456789abcdef\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestNewConfigRejectsInvalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CHARTY_APP_ENV", "staging")

	_, err := NewConfig()
	require.Error(t, err)
}

func TestProductionRequiresJWTSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CHARTY_APP_ENV", "production")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt_secret")

	t.Setenv("CHARTY_AUTH_JWT_SECRET", "too-short")
	_, err = NewConfig()
	require.Error(t, err)

	t.Setenv("CHARTY_AUTH_JWT_SECRET", strings.Repeat("s", 32))
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestGetDSNFromParts(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "charty", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=charty sslmode=disable", p.GetDSN())
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Auth.LoginRatePerMinute)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
