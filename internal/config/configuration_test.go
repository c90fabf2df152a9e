package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "tecnofit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  log:
    format: json
    level: debug
database:
  driver: sqlite
  path: /tmp/tecnofit.db
pagination:
  perPage: 30
  maxPerPage: 50
cleanup:
  schedule: "@daily"
  retention: 48h
`)

	cfg, err := LoadConfiguration(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Server.LogConfig.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Pagination.PerPage)
	assert.Equal(t, 50, cfg.Pagination.MaxPerPage)
	assert.Equal(t, "@daily", cfg.Cleanup.Schedule)
	assert.Equal(t, "48h", cfg.Cleanup.Retention)
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 0\n")

	cfg, err := LoadConfiguration(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, DefaultPerPage, cfg.Pagination.PerPage)
	assert.Equal(t, DefaultMaxPerPage, cfg.Pagination.MaxPerPage)
	assert.Equal(t, "720h", cfg.Cleanup.Retention)
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
