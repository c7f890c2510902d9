package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `
database:
  url: "postgres://app:secret@db:5432/vendure?sslmode=disable"

redis:
  addr: "cache:6380"
  db: 2
  event_channel: "shop.events"

logging:
  level: "debug"

catalog:
  path: "./rules/catalog.yaml"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:secret@db:5432/vendure?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "shop.events", cfg.Redis.EventChannel)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "./rules/catalog.yaml", cfg.Catalog.Path)
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
database:
  url: "postgres://localhost/vendure"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "vendure.events", cfg.Redis.EventChannel)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "catalog.yaml", cfg.Catalog.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", `
database:
  url: "postgres://localhost/vendure"
redis:
  addr: "cache:6380"
`)

	t.Setenv("DATABASE_URL", "postgres://prod-db/vendure")
	t.Setenv("REDIS_ADDR", "prod-cache:6379")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://prod-db/vendure", cfg.Database.URL)
	assert.Equal(t, "prod-cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
