// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains memoization parameters.
	Cache CacheConfig `json:"cache"`

	// Seed seeds the random source used for city selection and shuffling.
	// Zero seeds from the clock. Ignored when WithRand is passed to NewEngine.
	Seed int64 `json:"seed"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultN is the result count used when a request leaves N at zero.
	// Default: 10.
	DefaultN int `json:"default_n"`

	// MaxN caps the result count of a single request.
	// Default: 100.
	MaxN int `json:"max_n"`

	// MaxUserReviews caps how many of a user's reviews feed a prediction.
	// Zero means all of them.
	MaxUserReviews int `json:"max_user_reviews"`
}

// CacheConfig contains memoization parameters.
type CacheConfig struct {
	// Enabled memoizes similarities and user means across requests.
	// Default: true.
	Enabled bool `json:"enabled"`

	// SimilarityEntries bounds the pairwise similarity cache.
	// Default: 200000.
	SimilarityEntries int `json:"similarity_entries"`

	// UserMeanEntries bounds the per-user mean rating cache.
	// Default: 50000.
	UserMeanEntries int `json:"user_mean_entries"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultN: 10,
			MaxN:     100,
		},
		Cache: CacheConfig{
			Enabled:           true,
			SimilarityEntries: 200000,
			UserMeanEntries:   50000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("limits.default_n must be positive, got %d", c.Limits.DefaultN)
	}
	if c.Limits.MaxN < c.Limits.DefaultN {
		return fmt.Errorf("limits.max_n (%d) must be >= limits.default_n (%d)", c.Limits.MaxN, c.Limits.DefaultN)
	}
	if c.Limits.MaxUserReviews < 0 {
		return fmt.Errorf("limits.max_user_reviews must be non-negative, got %d", c.Limits.MaxUserReviews)
	}
	if c.Cache.Enabled {
		if c.Cache.SimilarityEntries < 1 {
			return fmt.Errorf("cache.similarity_entries must be positive, got %d", c.Cache.SimilarityEntries)
		}
		if c.Cache.UserMeanEntries < 1 {
			return fmt.Errorf("cache.user_mean_entries must be positive, got %d", c.Cache.UserMeanEntries)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
