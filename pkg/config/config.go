// Package config provides configuration file support for permaudit.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/permaudit-project/permaudit/pkg/errclass"
)

// Config represents the permaudit configuration.
type Config struct {
	// Matching selects how template and actual ACEs are compared:
	// "exact" (case-sensitive, matches the original tool) or "fold"
	// (case-insensitive).
	Matching string        `yaml:"matching"`
	Workers  int           `yaml:"workers"`
	Report   ReportConfig  `yaml:"report"`
	Logging  LoggingConfig `yaml:"logging"`
	Webhook  WebhookConfig `yaml:"webhook"`
}

// ReportConfig configures report rendering.
type ReportConfig struct {
	Title string `yaml:"title"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WebhookConfig configures deviation notifications.
type WebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Secret  string `yaml:"secret"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Matching: "exact",
		Workers:  1,
		Report: ReportConfig{
			Title: "Folder Permission Report",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errclass.ErrConfigInvalid.WithMessagef("parse %s: %v", path, err)
	}

	if cfg.Matching != "exact" && cfg.Matching != "fold" {
		return nil, errclass.ErrConfigInvalid.WithMessagef("matching must be exact or fold, got %q", cfg.Matching)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
