package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLOverlay(t *testing.T) {
	cfg := Default()
	data := []byte(`
port: "9090"
max_depots: 7
cache_ttl: 30s
`)

	require.NoError(t, Parse(data, &cfg))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7, cfg.MaxDepots)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	// untouched keys keep defaults
	assert.Equal(t, 5000, cfg.MaxDestinations)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\nsolve_workers: 2\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7100")
	t.Setenv("SOLVE_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7100", cfg.Port)
	assert.Equal(t, 2, cfg.SolveWorkers)
	assert.Equal(t, 3*time.Second, cfg.SolveTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MAX_DEPOTS", "many")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MAX_DEPOTS", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("DEPOT_ROUTE_TEST_KEY", "value")

	assert.Equal(t, "value", Get("DEPOT_ROUTE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("DEPOT_ROUTE_TEST_UNSET", "fallback"))
}
