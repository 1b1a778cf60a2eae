package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all toolkit settings, populated from FARS_-prefixed
// environment variables.
type Config struct {
	// DataDir is the directory holding the yearly accident extracts.
	DataDir string `envconfig:"DATA_DIR" default:"data"`

	// OutlineFile points at a GeoJSON file of state boundary polygons.
	// Optional: without it maps are drawn on a bare grid.
	OutlineFile string `envconfig:"OUTLINE_FILE"`

	// OutputDir receives exported summaries and rendered maps.
	OutputDir string `envconfig:"OUTPUT_DIR" default:"out"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fars", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if cfg.DataDir == "" {
		return nil, errors.New("FARS_DATA_DIR is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("FARS_OUTPUT_DIR is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid FARS_LOG_LEVEL")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("invalid FARS_LOG_FORMAT")
	}

	return &cfg, nil
}
