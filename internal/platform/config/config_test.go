package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("BOTANICA_ADDR", "")
	t.Setenv("DATABASE_URL", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Conservation.Enabled)
	assert.Equal(t, "iucn", cfg.Conservation.Source)
	assert.Equal(t, 24*time.Hour, cfg.Conservation.CacheTTL)
	assert.False(t, cfg.Context.Enabled)
	assert.True(t, cfg.DarwinCore.Enabled)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Audit.Brokers)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BOTANICA_ADDR", ":9090")
	t.Setenv("BOTANICA_CONSERVATION_ENABLED", "false")
	t.Setenv("BOTANICA_IUCN_SOURCE", "fake")
	t.Setenv("IUCN_TIMEOUT", "750ms")
	t.Setenv("IUCN_RATE_PER_SECOND", "0.5")
	t.Setenv("BOTANICA_CONTEXT_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.False(t, cfg.Conservation.Enabled)
	assert.Equal(t, "fake", cfg.Conservation.Source)
	assert.Equal(t, 750*time.Millisecond, cfg.Conservation.Timeout)
	assert.InDelta(t, 0.5, cfg.Conservation.RatePerSecond, 1e-9)
	assert.True(t, cfg.Context.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Audit.Brokers)
}

func TestFromEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("IUCN_TIMEOUT", "soon")
	t.Setenv("BOTANICA_DARWIN_CORE_ENABLED", "maybe")

	cfg := FromEnv()

	assert.Equal(t, 5*time.Second, cfg.Conservation.Timeout)
	assert.True(t, cfg.DarwinCore.Enabled)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "botanica.yaml")
	content := `
server:
  addr: ":7000"
conservation:
  source: fake
  cache_ttl: 1h
context:
  enabled: true
  base_url: http://contextlite:8090
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("BOTANICA_ADDR", ":7001")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7001", cfg.Server.Addr, "environment wins over file")
	assert.Equal(t, "fake", cfg.Conservation.Source)
	assert.Equal(t, time.Hour, cfg.Conservation.CacheTTL)
	assert.True(t, cfg.Context.Enabled)
	assert.Equal(t, "http://contextlite:8090", cfg.Context.BaseURL)
	assert.Equal(t, "botanica-api", cfg.Server.JWTAudience, "unset keys keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
