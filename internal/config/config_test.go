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
	for _, key := range []string{
		"OFERTAS_URL", "OFERTAS_USER_AGENT", "OFERTAS_LIMIT", "OFERTAS_FETCH_MODE",
		"OFERTAS_TIMEOUT", "OFERTAS_SHOW_CAPTIONS", "OFERTAS_CONTAINER_CLASS",
		"LOG_LEVEL", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadWithoutEnvironmentMatchesDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
	assert.Equal(t, 5, cfg.Limit)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OFERTAS_URL", "http://localhost:8080/promos")
	t.Setenv("OFERTAS_LIMIT", "3")
	t.Setenv("OFERTAS_FETCH_MODE", "Browser")
	t.Setenv("OFERTAS_TIMEOUT", "15s")
	t.Setenv("OFERTAS_SHOW_CAPTIONS", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/promos", cfg.SourceURL)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, FetchModeBrowser, cfg.FetchMode)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.True(t, cfg.ShowCaption)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("OFERTAS_USER_AGENT")
	t.Cleanup(func() { os.Unsetenv("OFERTAS_USER_AGENT") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OFERTAS_USER_AGENT=TestAgent/1.0\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TestAgent/1.0", cfg.UserAgent)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"OFERTAS_LIMIT":         "five",
		"OFERTAS_TIMEOUT":       "soon",
		"OFERTAS_SHOW_CAPTIONS": "maybe",
		"OFERTAS_FETCH_MODE":    "carrier-pigeon",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Limit = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SourceURL = ""
	assert.Error(t, cfg.Validate())
}
