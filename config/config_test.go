package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"naukri-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Messaging.RequireApproval)
	assert.Equal(t, 30*time.Second, cfg.Redis.StatsTTL)
	assert.Empty(t, cfg.Redis.Addr)

	loc, err := cfg.Jobs.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
storage:
  driver: postgres
messaging:
  require_approval: false
redis:
  stats_ttl: 1m
`)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("NAUKRI_DATABASE_NAME", "jobs_test")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, config.DriverPostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Messaging.RequireApproval)
	assert.Equal(t, time.Minute, cfg.Redis.StatsTTL)
	assert.Equal(t, "jobs_test", cfg.DB.Name)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown driver", body: "storage:\n  driver: mongo\n"},
		{name: "bad timezone", body: "jobs:\n  timezone: Mars/Olympus\n"},
		{name: "bad port", body: "server:\n  port: 70000\n"},
		{name: "bcrypt cost too high", body: "security:\n  bcrypt_cost: 99\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
