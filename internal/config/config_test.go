package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/ishikawa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ishikawa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "memory", cfg.Sessions.Backend)
	assert.Equal(t, 1500*time.Millisecond, cfg.Provider.Latency.Std())
	assert.Equal(t, 30*time.Second, cfg.Export.Timeout.Std())
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeFile(t, `
listen: ":9000"
log_level: debug
sessions:
  backend: redis
  redis:
    addr: "redis:6379"
provider:
  latency: 10ms
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis", cfg.Sessions.Backend)
	assert.Equal(t, "redis:6379", cfg.Sessions.Redis.Addr)
	assert.Equal(t, 10*time.Millisecond, cfg.Provider.Latency.Std())
	// Untouched values keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Export.Timeout.Std())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeFile(t, "sessions:\n  backend: etcd\n")
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "unknown session backend")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
