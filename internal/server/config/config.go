// Package config holds the map tile service configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tile service configuration.
type Config struct {
	Addr           string   `yaml:"addr"`
	Version        string   `yaml:"version"`         // default game version for queries that omit one
	CachePath      string   `yaml:"cache_path"`      // empty disables the tile cache
	TileMaxCells   int      `yaml:"tile_max_cells"`  // upper bound on sx*sz per request
	RateLimit      float64  `yaml:"rate_limit"`      // requests per second per client, 0 disables
	RateBurst      int      `yaml:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins"` // CORS; empty allows any origin
	LogLevel       string   `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:         ":8732",
		Version:      "1.18",
		CachePath:    "data/tiles.db",
		TileMaxCells: 1 << 20,
		RateLimit:    20,
		RateBurst:    40,
		LogLevel:     "info",
	}
}

// LoadFile reads a YAML config file into cfg. A missing file leaves cfg
// unchanged.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["addr"] {
		cfg.Addr = fromFile.Addr
	}
	if !explicitFlags["version"] {
		cfg.Version = fromFile.Version
	}
	if !explicitFlags["cache"] {
		cfg.CachePath = fromFile.CachePath
	}
	if !explicitFlags["tile-max-cells"] {
		cfg.TileMaxCells = fromFile.TileMaxCells
	}
	if !explicitFlags["rate-limit"] {
		cfg.RateLimit = fromFile.RateLimit
	}
	if !explicitFlags["rate-burst"] {
		cfg.RateBurst = fromFile.RateBurst
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	if len(fromFile.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fromFile.AllowedOrigins
	}
}
