// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/larder/internal/recommend/neighbors"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateCorpus(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed ENVIRONMENT values
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates rate limiting bounds
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether CORS is configured with a wildcard origin.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if a wildcard origin is used in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.HasWildcardCORS()
}

// validCorpusFormats defines the allowed CORPUS_FORMAT values
var validCorpusFormats = map[string]bool{
	"":        true,
	"auto":    true,
	"csv":     true,
	"tsv":     true,
	"parquet": true,
	"json":    true,
}

// validateCorpus validates corpus configuration
func (c *Config) validateCorpus() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	if !validCorpusFormats[strings.ToLower(c.Corpus.Format)] {
		return fmt.Errorf("CORPUS_FORMAT must be one of: auto, csv, tsv, parquet, json")
	}
	return nil
}

const maxPreviewLength = 1000

// validateRecommend validates recommendation engine configuration
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.NeighborCount < 1 {
		return fmt.Errorf("RECOMMEND_NEIGHBOR_COUNT must be at least 1, got %d", r.NeighborCount)
	}
	if r.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be at least 1, got %d", r.MaxResults)
	}
	if r.AllRegionsSentinel == "" {
		return fmt.Errorf("RECOMMEND_ALL_REGIONS_SENTINEL must not be empty")
	}
	if _, err := neighbors.New(r.Index); err != nil {
		return fmt.Errorf("RECOMMEND_INDEX must be one of: %s", strings.Join(neighbors.Kinds(), ", "))
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	if r.PreviewLength < 0 || r.PreviewLength > maxPreviewLength {
		return fmt.Errorf("RECOMMEND_PREVIEW_LENGTH must be between 0 and %d", maxPreviewLength)
	}
	if r.StatsInterval < 0 {
		return fmt.Errorf("RECOMMEND_STATS_INTERVAL must not be negative")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
