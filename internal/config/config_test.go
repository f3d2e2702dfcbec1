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

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: "production"
upstream:
  base_url: "https://portfolio.example.edu"
  timeout: "30s"
export:
  institution: "Example Institute"
logging:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://portfolio.example.edu", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, "Example Institute", cfg.Export.Institution)
	// Unset file keys keep their defaults
	assert.Equal(t, "ePortfolio", cfg.Export.Watermark)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
upstream:
  base_url: "https://from-file.example.edu"
`)
	t.Setenv("UPSTREAM_BASE_URL", "https://from-env.example.edu")
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.edu", cfg.Upstream.BaseURL)
	assert.Equal(t, "3000", cfg.Server.Port)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	path := writeConfig(t, `
upstream:
  timeout: "soon"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
