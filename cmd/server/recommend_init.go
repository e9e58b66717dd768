// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/cityrec/internal/config"
	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/recommend"
	"github.com/tomtom215/cityrec/internal/supervisor"
	"github.com/tomtom215/cityrec/internal/supervisor/services"
)

// RecommendComponents holds all recommendation-related components.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Service *services.RecommendService
}

// initRecommend builds the engine over repo and registers its housekeeping
// service with the engine layer of the tree.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, repo dataset.Store, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	engineCfg := buildEngineConfig(&cfg.Recommend)

	logger.Info().
		Int("default_n", engineCfg.Limits.DefaultN).
		Int("max_n", engineCfg.Limits.MaxN).
		Bool("cache_enabled", engineCfg.Cache.Enabled).
		Int64("seed", engineCfg.Seed).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(repo, engineCfg, logger)
	if err != nil {
		return nil, err
	}

	service := services.NewRecommendService(engine, services.RecommendServiceConfig{
		WarmOnStartup:  cfg.Recommend.WarmOnStartup,
		ReportInterval: cfg.Recommend.StatsInterval,
	}, logger)
	if tree != nil {
		tree.AddEngineService(service)
	}

	return &RecommendComponents{Engine: engine, Service: service}, nil
}

// buildEngineConfig maps the application config onto the engine's config.
func buildEngineConfig(rc *config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Seed = rc.Seed
	cfg.Limits.DefaultN = rc.DefaultN
	cfg.Limits.MaxN = rc.MaxN
	cfg.Limits.MaxUserReviews = rc.MaxUserReviews
	cfg.Cache.Enabled = rc.CacheEnabled
	cfg.Cache.SimilarityEntries = rc.SimilarityCacheSize
	cfg.Cache.UserMeanEntries = rc.UserMeanCacheSize
	return cfg
}
