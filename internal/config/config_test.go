package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.True(t, cfg.Server.CORS.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.Origins)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "", cfg.Engine.Host)
	assert.True(t, cfg.Activity.Enabled)
	assert.Equal(t, 2*time.Second, cfg.PingTimeout())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	body := []byte("server:\n  listen_addr: \":8088\"\n  log_level: debug\nengine:\n  ping_timeout: 5s\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.PingTimeout())
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Server.CORS.Enabled)
}

func TestLoadMissingNamedFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WHARFD_SERVER_LISTEN_ADDR", ":9000")
	t.Setenv("WHARFD_ENGINE_HOST", "tcp://127.0.0.1:2375")
	t.Setenv("WHARFD_ACTIVITY_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, "tcp://127.0.0.1:2375", cfg.Engine.Host)
	assert.False(t, cfg.Activity.Enabled)
}

func TestPingTimeoutFallsBackOnGarbage(t *testing.T) {
	cfg := &Config{Engine: EngineConfig{PingTimeout: "soon"}}
	assert.Equal(t, 2*time.Second, cfg.PingTimeout())

	cfg.Engine.PingTimeout = "1d"
	assert.Equal(t, 24*time.Hour, cfg.PingTimeout())
}
