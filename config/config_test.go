package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/eqsolve/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvOutput, EnvCategory, EnvConcurrency} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, inequality.All, cfg.Category())
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "eqsolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
output:
  format: json
inequality:
  default_category: positive
examples:
  inequality: ["x > 1"]
  system:
    - ["x + y = 2", "x - y = 0"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.Color, "unset keys keep their defaults")
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, inequality.Positive, cfg.Category())
	assert.Equal(t, []string{"x > 1"}, cfg.Examples.Inequality)
	assert.Equal(t, [][]string{{"x + y = 2", "x - y = 0"}}, cfg.Examples.System)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cases := map[string]string{
		"level":    "logging: {level: loud}",
		"format":   "output: {format: xml}",
		"category": "inequality: {default_category: odd}",
		"workers":  "batch: {concurrency: 0}",
		"pair":     `examples: {system: [["x = 1"]]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("values replace file settings", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "WARN")
		t.Setenv(EnvOutput, "json")
		t.Setenv(EnvCategory, "neg")
		t.Setenv(EnvConcurrency, "9")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, FormatJSON, cfg.Output.Format)
		assert.Equal(t, inequality.Negative, cfg.Category())
		assert.Equal(t, 9, cfg.Batch.Concurrency)
	})

	t.Run("non-numeric concurrency is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConcurrency, "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4, cfg.Batch.Concurrency)
	})

	t.Run("invalid env value fails Load", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvOutput, "yaml")

		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "eqsolve.yaml")
	want := DefaultConfig()
	want.Output.Format = FormatJSON
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
