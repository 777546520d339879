// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//   - Server: HTTP listener (host, port, timeout, environment)
//   - Logging: Log level, output format, caller info
//   - Security: Rate limiting and CORS origins
//   - Corpus: Recipe file path and format
//   - Recommend: Neighbor count, result cap, region sentinel, index, previews
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	recipes, err := corpus.Load(ctx, cfg.Corpus.Path, cfg.Corpus.Format)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// ToLoggingConfig converts to the logging package configuration.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CorpusConfig locates the recipe file read at startup.
type CorpusConfig struct {
	// Path to a CSV, TSV, Parquet or JSON recipe file.
	Path string `koanf:"path"`

	// Format is auto, csv, tsv, parquet or json. Auto picks by extension.
	Format string `koanf:"format"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// NeighborCount is how many nearest recipes are fetched before the
	// region filter runs.
	NeighborCount int `koanf:"neighbor_count"`

	// MaxResults caps the filtered list.
	MaxResults int `koanf:"max_results"`

	// AllRegionsSentinel is the region value that disables filtering.
	AllRegionsSentinel string `koanf:"all_regions_sentinel"`

	// Index is the neighbor index: bruteforce or vptree.
	Index string `koanf:"index"`

	// RequestTimeout bounds a single recommendation request.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// PreviewLength is the default preview truncation length. 0 disables previews.
	PreviewLength int `koanf:"preview_length"`

	// StatsInterval is how often engine counters are logged. 0 disables the reporter.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

// ToEngineConfig converts to the recommend package configuration.
func (r RecommendConfig) ToEngineConfig() *recommend.Config {
	return &recommend.Config{
		NeighborCount:      r.NeighborCount,
		MaxResults:         r.MaxResults,
		AllRegionsSentinel: r.AllRegionsSentinel,
		IndexKind:          r.Index,
	}
}

// Load reads configuration from defaults, an optional config file and
// environment variables, later sources overriding earlier ones:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether ENVIRONMENT is development or unset.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}
