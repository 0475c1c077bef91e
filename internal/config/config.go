// Package config loads the ishikawa service configuration from a YAML file,
// falling back to defaults when no file is given.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "10ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the plain time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the service configuration.
type Config struct {
	Listen   string         `yaml:"listen"`
	LogLevel string         `yaml:"log_level"`
	Sessions SessionsConfig `yaml:"sessions"`
	Provider ProviderConfig `yaml:"provider"`
	Export   ExportConfig   `yaml:"export"`
}

// SessionsConfig selects and configures the session store backend.
type SessionsConfig struct {
	Backend string      `yaml:"backend"` // "memory" or "redis"
	Redis   RedisConfig `yaml:"redis"`
	TTL     Duration    `yaml:"ttl"`
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ProviderConfig tunes the mock data provider.
type ProviderConfig struct {
	Latency Duration `yaml:"latency"`
}

// ExportConfig tunes the PDF printer.
type ExportConfig struct {
	ChromePath string   `yaml:"chrome_path"` // empty = let chromedp find one
	Timeout    Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Sessions: SessionsConfig{
			Backend: "memory",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
			TTL: Duration(time.Hour),
		},
		Provider: ProviderConfig{
			Latency: Duration(1500 * time.Millisecond),
		},
		Export: ExportConfig{
			Timeout: Duration(30 * time.Second),
		},
	}
}

// Load reads the configuration from path, layered over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Sessions.Backend != "memory" && cfg.Sessions.Backend != "redis" {
		return cfg, fmt.Errorf("unknown session backend %q", cfg.Sessions.Backend)
	}
	return cfg, nil
}
