// Package config provides configuration loading and validation for tagconv.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gabmars/russian-tagsets/tagmap"
)

// Environment variable names.
const (
	EnvLogLevel  = "TAGCONV_LOG_LEVEL"
	EnvLogFormat = "TAGCONV_LOG_FORMAT"
	EnvInversion = "TAGCONV_INVERSION"
)

// Inversion policy names accepted in the config file and environment.
const (
	InversionLastWins = "last_wins"
	InversionStrict   = "strict"
)

// Config is the root configuration structure.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Inversion InversionConfig `yaml:"inversion"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // "json" or "console"
}

// InversionConfig selects how reverse tables resolve shared values.
type InversionConfig struct {
	Policy string `yaml:"policy"` // "last_wins" or "strict"
}

// Load reads a YAML config file, expands environment variables in it,
// applies environment overrides and defaults, then validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finish(&cfg)
}

// LoadFromEnv builds a config from environment variables and defaults only.
func LoadFromEnv() (*Config, error) {
	return finish(&Config{})
}

// LoadWithFallback loads path when it exists, otherwise falls back to LoadFromEnv.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return LoadFromEnv()
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Policy returns the configured inversion policy.
func (c *Config) Policy() tagmap.Policy {
	if c.Inversion.Policy == InversionStrict {
		return tagmap.Strict
	}

	return tagmap.LastWins
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvInversion); v != "" {
		cfg.Inversion.Policy = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Inversion.Policy == "" {
		cfg.Inversion.Policy = InversionLastWins
	}
}

func validate(cfg *Config) error {
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	validPolicies := map[string]bool{InversionLastWins: true, InversionStrict: true}
	if !validPolicies[cfg.Inversion.Policy] {
		return fmt.Errorf("inversion.policy must be %q or %q, got %q",
			InversionLastWins, InversionStrict, cfg.Inversion.Policy)
	}

	return nil
}
