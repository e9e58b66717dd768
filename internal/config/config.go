// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package config

import (
	"time"
)

// Dataset loader formats.
const (
	FormatJSON   = "json"
	FormatDuckDB = "duckdb"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig locates the dataset. Path holds one directory per city, each
// with business.json, review.json, user.json, tip.json and checkin.json in
// newline-delimited JSON.
type DatasetConfig struct {
	Path   string   `koanf:"path"`
	Format string   `koanf:"format"` // json or duckdb
	Cities []string `koanf:"cities"` // empty = every sub-directory

	// DuckDBMemory is the DuckDB memory_limit used by the duckdb format.
	DuckDBMemory string `koanf:"duckdb_memory"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	DefaultN            int   `koanf:"default_n"`
	MaxN                int   `koanf:"max_n"`
	Seed                int64 `koanf:"seed"` // 0 = seed from the clock
	CacheEnabled        bool  `koanf:"cache_enabled"`
	SimilarityCacheSize int   `koanf:"similarity_cache_size"`
	UserMeanCacheSize   int   `koanf:"user_mean_cache_size"`
	MaxUserReviews      int   `koanf:"max_user_reviews"` // 0 = all

	// WarmOnStartup precomputes reviewer means once the dataset is loaded.
	WarmOnStartup bool `koanf:"warm_on_startup"`

	// StatsInterval is how often engine statistics are logged.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
