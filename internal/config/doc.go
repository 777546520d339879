// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package config provides centralized configuration management for Larder.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Later layers override earlier ones.

# Config File

The file is taken from CONFIG_PATH when that file exists, otherwise from the
first of config.yaml, config.yml, /etc/larder/config.yaml and
/etc/larder/config.yml that exists. Keys follow the koanf struct tags:

	server:
	  port: 8080
	corpus:
	  path: /data/recipes.csv
	recommend:
	  index: vptree
	  preview_length: 120

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

Security:
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Corpus:
  - CORPUS_PATH: Recipe file (default: data/recipes.csv)
  - CORPUS_FORMAT: auto, csv, tsv, parquet, json (default: auto)

Recommendation:
  - RECOMMEND_NEIGHBOR_COUNT: Neighbors fetched before filtering (default: 3)
  - RECOMMEND_MAX_RESULTS: Result cap after filtering (default: 5)
  - RECOMMEND_ALL_REGIONS_SENTINEL: Region meaning no filter (default: All)
  - RECOMMEND_INDEX: bruteforce or vptree (default: bruteforce)
  - RECOMMEND_REQUEST_TIMEOUT: Per-request deadline (default: 5s)
  - RECOMMEND_PREVIEW_LENGTH: Preview truncation, 0 disables (default: 0)

# Validation

Load validates the merged configuration and every error names the
environment variable to fix:

	cfg, err := config.Load()
	if err != nil {
	    // "configuration validation failed: RECOMMEND_INDEX must be one of: bruteforce, vptree"
	}

# Thread Safety

Config values are immutable after Load and safe for concurrent reads.
*/
package config
