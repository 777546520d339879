// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"fmt"

	"github.com/tomtom215/larder/internal/recommend/neighbors"
)

// Default values for Config.
const (
	DefaultNeighborCount      = 3
	DefaultMaxResults         = 5
	DefaultAllRegionsSentinel = "All"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// NeighborCount is how many nearest recipes are fetched before the
	// region filter runs. Filtering never fetches more.
	NeighborCount int `json:"neighbor_count"`

	// MaxResults caps the number of recommendations returned.
	MaxResults int `json:"max_results"`

	// AllRegionsSentinel is the region value that disables filtering.
	AllRegionsSentinel string `json:"all_regions_sentinel"`

	// IndexKind selects the neighbor index implementation.
	IndexKind string `json:"index_kind"`
}

// DefaultConfig returns a Config with the standard settings.
func DefaultConfig() *Config {
	return &Config{
		NeighborCount:      DefaultNeighborCount,
		MaxResults:         DefaultMaxResults,
		AllRegionsSentinel: DefaultAllRegionsSentinel,
		IndexKind:          neighbors.KindBruteForce,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.NeighborCount < 1 {
		return fmt.Errorf("neighbor_count must be positive, got %d", c.NeighborCount)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.AllRegionsSentinel == "" {
		return fmt.Errorf("all_regions_sentinel must not be empty")
	}
	if _, err := neighbors.New(c.IndexKind); err != nil {
		return fmt.Errorf("index_kind: %w", err)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
