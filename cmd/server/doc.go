// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package main is the entry point for the Larder server.

Larder recommends recipes from a list of ingredients. At startup it reads a
recipe file, builds a TF-IDF model over the ingredient text and indexes the
vectors for nearest-neighbor search. The model is immutable afterwards; all
requests are read-only queries against it.

# Startup Order

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog
 3. Corpus: DuckDB reads CSV, Parquet or JSON into recipes
 4. Engine: vectorizer and neighbor index; any failure is fatal
 5. HTTP: chi router with CORS, rate limiting and Prometheus metrics
 6. Supervision: suture tree with the HTTP server and stats reporter

# Supervisor Tree

	RootSupervisor ("larder")
	├── EngineSupervisor ("engine-layer")
	│   └── StatsReporterService (RECOMMEND_STATS_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Configuration

Common environment variables:

	HTTP_PORT=8080
	CORPUS_PATH=data/recipes.csv
	CORPUS_FORMAT=auto            # auto, csv, tsv, parquet, json
	RECOMMEND_INDEX=bruteforce    # or vptree
	RECOMMEND_PREVIEW_LENGTH=0    # 0 disables previews
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the tree context. The HTTP server drains in-flight
requests for up to ten seconds, and services that fail to stop in time are
reported before exit.

# Example Usage

	CORPUS_PATH=./recipes.csv ./larder

	curl -s -X POST localhost:8080/api/v1/recommendations \
	  -H 'Content-Type: application/json' \
	  -d '{"ingredients":"tomato, basil, mozzarella","region":"Italian"}'
*/
package main
