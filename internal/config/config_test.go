package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ExpandsEnvAndParses(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: promisync
  password: ${TEST_DB_PASSWORD}
  dbname: catalog
  sslmode: disable
promidata:
  base_url: https://promidata.example/import
  suppliers:
    - A23
    - B77
sync:
  workers: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "https://promidata.example/import", cfg.Promidata.BaseURL)
	assert.Equal(t, []string{"A23", "B77"}, cfg.Promidata.Suppliers)
	assert.Equal(t, 8, cfg.Sync.Workers)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
promidata:
  base_url: https://promidata.example/import
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Promidata.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Promidata.Retry.InitialBackoff)
	assert.Equal(t, 4, cfg.Sync.Workers)
	assert.Equal(t, 5, cfg.Sync.MaxJobAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Sync.JobLease)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "promisync", cfg.RabbitMQ.Exchange)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
