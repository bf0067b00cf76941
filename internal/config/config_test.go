package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabmars/russian-tagsets/internal/config"
	"github.com/gabmars/russian-tagsets/tagmap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tagconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{config.EnvLogLevel, config.EnvLogFormat, config.EnvInversion} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
logging:
  level: debug
  format: json
inversion:
  policy: strict
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, tagmap.Strict, cfg.Policy())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, config.InversionLastWins, cfg.Inversion.Policy)
	assert.Equal(t, tagmap.LastWins, cfg.Policy())
}

func TestLoadExpandsEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("TAGCONV_TEST_LEVEL", "error")

	cfg, err := config.Load(writeConfig(t, "logging:\n  level: ${TAGCONV_TEST_LEVEL}\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "trace")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvInversion, config.InversionStrict)

	cfg, err := config.Load(writeConfig(t, "logging:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, tagmap.Strict, cfg.Policy())
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad format", content: "logging:\n  format: xml\n"},
		{name: "bad policy", content: "inversion:\n  policy: first_wins\n"},
		{name: "bad yaml", content: "logging: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadWithFallback(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadWithFallback(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Logging.Format)

	cfg, err = config.LoadWithFallback(writeConfig(t, "logging:\n  format: json\n"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
