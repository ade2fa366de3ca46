// Package config loads eqsolve settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqsolve/inequality"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel    = "EQSOLVE_LOG_LEVEL"
	EnvOutput      = "EQSOLVE_OUTPUT"
	EnvCategory    = "EQSOLVE_CATEGORY"
	EnvConcurrency = "EQSOLVE_CONCURRENCY"
)

// Config holds all eqsolve settings.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`
	Inequality InequalityConfig `yaml:"inequality"`
	Batch      BatchConfig      `yaml:"batch"`
	Examples   ExamplesConfig   `yaml:"examples"`
}

// LoggingConfig configures the zap logger of the CLI.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
	Color  bool   `yaml:"color"`
}

// InequalityConfig holds inequality solver defaults.
type InequalityConfig struct {
	DefaultCategory string `yaml:"default_category"` // all, positive, negative
}

// BatchConfig bounds batch parallelism.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// ExamplesConfig replaces the built-in example lists when non-empty.
type ExamplesConfig struct {
	System     [][]string `yaml:"system,omitempty"`
	Inequality []string   `yaml:"inequality,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Logging:    LoggingConfig{Level: "info"},
		Output:     OutputConfig{Format: FormatText, Color: true},
		Inequality: InequalityConfig{DefaultCategory: inequality.All.String()},
		Batch:      BatchConfig{Concurrency: 4},
	}
}

// Load reads path over the defaults, applies EQSOLVE_* overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects unknown levels, formats and categories and a
// non-positive batch concurrency.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalid)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if _, err := inequality.ParseCategory(c.Inequality.DefaultCategory); err != nil {
		return fmt.Errorf("inequality.default_category: %w: %w", ErrInvalid, err)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency %d: %w", c.Batch.Concurrency, ErrInvalid)
	}
	for i, pair := range c.Examples.System {
		if len(pair) != 2 {
			return fmt.Errorf("examples.system[%d] has %d equations: %w", i, len(pair), ErrInvalid)
		}
	}

	return nil
}

// Category returns the parsed default category. Validate guarantees it
// parses; an invalid value reads as All.
func (c *Config) Category() inequality.Category {
	cat, _ := inequality.ParseCategory(c.Inequality.DefaultCategory)

	return cat
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvCategory); v != "" {
		c.Inequality.DefaultCategory = strings.ToLower(v)
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Batch.Concurrency = n
		}
	}
}
