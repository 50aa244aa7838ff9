package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"KEIMA_API_URL", "KEIMA_CATALOG_URL", "TURSO_DATABASE_URL", "KEIMA_LOG_LEVEL", "KEIMA_PREMIUM", "DEV_MODE"} {
		t.Setenv(v, "")
	}
}

func TestLoadConfigFromMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadConfigFrom(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultCatalogURL, cfg.API.CatalogURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout.Duration)
	assert.Equal(t, dir, cfg.StateDir)
	assert.False(t, cfg.Profile.Premium)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_level = "debug"

[api]
base_url = "https://keima.example.com"
timeout = "3s"

[profile]
goal = "ganhar_massa"
premium = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://keima.example.com", cfg.API.BaseURL)
	assert.Equal(t, DefaultCatalogURL, cfg.API.CatalogURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout.Duration)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ganhar_massa", cfg.Profile.Goal)
	assert.True(t, cfg.Profile.Premium)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"http://file\"\n"), 0644))

	t.Setenv("KEIMA_API_URL", "http://env")
	t.Setenv("KEIMA_PREMIUM", "true")
	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.API.BaseURL)
	assert.True(t, cfg.Profile.Premium)
	assert.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.DB.ConnectionString)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Profile.Goal = "perder_peso"
	require.NoError(t, SaveConfigTo(path, cfg))

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "perder_peso", loaded.Profile.Goal)
	assert.Equal(t, DefaultTimeout, loaded.API.Timeout.Duration)
}

func TestMalformedConfigIsAnError(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\n"), 0644))

	_, err := LoadConfigFrom(path)
	assert.Error(t, err)
}
