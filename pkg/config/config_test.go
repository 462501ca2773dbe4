package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Test loading with defaults (no env vars set)
	cfg := Load("")

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultFallback, cfg.Fallback)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAP_LOG_LEVEL", "debug")
	t.Setenv("CAP_FALLBACK", "false")

	cfg := Load("")

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Fallback)
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("CAP_FALLBACK", "not-a-bool")

	cfg := Load("")
	assert.Equal(t, DefaultFallback, cfg.Fallback)
}

func TestLoad_EnvFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cpu-affinity")
	require.NoError(t, os.WriteFile(filename, []byte("CAP_LOG_LEVEL=warn\n"), 0o600))
	// godotenv sets the variable process-wide, clean up afterwards
	t.Cleanup(func() { _ = os.Unsetenv("CAP_LOG_LEVEL") })

	cfg := Load(filename)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}
