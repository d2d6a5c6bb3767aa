package config_test

import (
	"os"
	"path/filepath"
	"shifts/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Empty(t, cfg.LogLevel)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "shifts", cfg.Database.DatabaseName)
	require.Equal(t, 10, cfg.Eligibility.DefaultPageSize)
	require.Equal(t, 0, cfg.Eligibility.MaxConcurrentOverlapQueries)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_YAMLValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
logLevel: warn
http:
  addr: ":9090"
  requestTimeout: 3s
database:
  host: db
  port: 6543
eligibility:
  defaultPageSize: 25
  maxConcurrentOverlapQueries: 4
`))
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, 6543, cfg.Database.Port)
	require.Equal(t, 25, cfg.Eligibility.DefaultPageSize)
	require.Equal(t, 4, cfg.Eligibility.MaxConcurrentOverlapQueries)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
