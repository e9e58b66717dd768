// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package config provides centralized configuration management for Cityrec.

Configuration is layered with koanf. Later layers override earlier ones:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file (config.yaml, /etc/cityrec/config.yaml, or CONFIG_PATH)
 3. Environment variables, mapped explicitly by envTransformFunc

# Configuration Structure

  - DatasetConfig: where the Yelp-style dataset lives and how to load it
  - RecommendConfig: result limits, seed and memo cache sizes
  - ServerConfig: HTTP listener and timeouts
  - SecurityConfig: CORS and rate limiting
  - LoggingConfig: zerolog level, format and caller

# Environment Variables

Dataset:
  - DATASET_PATH: Root directory with one sub-directory per city (default: ./data)
  - DATASET_FORMAT: Loader, json or duckdb (default: json)
  - DATASET_CITIES: Comma-separated city filter (default: all)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit for the duckdb loader (default: 1GB)

Recommendation:
  - RECOMMEND_DEFAULT_N: Result count when none is requested (default: 10)
  - RECOMMEND_MAX_N: Upper bound on the result count (default: 100)
  - RECOMMEND_SEED: Random seed, 0 seeds from the clock (default: 0)
  - RECOMMEND_CACHE_ENABLED: Memoize similarities (default: true)
  - RECOMMEND_SIMILARITY_CACHE_SIZE: Similarity memo entries (default: 200000)
  - RECOMMEND_USER_MEAN_CACHE_SIZE: User mean memo entries (default: 50000)
  - RECOMMEND_MAX_USER_REVIEWS: Reviews per user fed to predictions, 0 = all
  - RECOMMEND_WARM_ON_STARTUP: Precompute reviewer means at startup (default: true)
  - RECOMMEND_STATS_INTERVAL: Engine stats log interval (default: 5m)

HTTP Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Security:
  - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
