// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cityrec/internal/recommend"
)

// DefaultReportInterval is how often engine statistics are logged.
const DefaultReportInterval = 5 * time.Minute

// RecommendEngine is the engine surface the service drives.
type RecommendEngine interface {
	// Warm precomputes memoized values and returns how many it computed.
	Warm(ctx context.Context) (int, error)

	// Stats returns request counters and cache statistics.
	Stats() recommend.EngineStats
}

// RecommendServiceConfig holds configuration for the recommendation service.
type RecommendServiceConfig struct {
	// WarmOnStartup fills the engine caches before the first report.
	WarmOnStartup bool

	// WarmTimeout bounds the warmup. Zero means no bound beyond the service context.
	WarmTimeout time.Duration

	// ReportInterval is how often statistics are logged.
	// Default: 5m
	ReportInterval time.Duration
}

// RecommendService keeps the recommendation engine's housekeeping under
// supervision: an optional cache warmup followed by periodic stats logging.
type RecommendService struct {
	engine RecommendEngine
	config RecommendServiceConfig
	logger zerolog.Logger
	name   string

	// warmed is set once a warmup succeeds so restarts do not redo it.
	warmed bool
}

// NewRecommendService creates a new recommendation service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommendService(engine RecommendEngine, cfg RecommendServiceConfig, logger zerolog.Logger) *RecommendService {
	if cfg.ReportInterval <= 0 {
		cfg.ReportInterval = DefaultReportInterval
	}
	return &RecommendService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "recommend").Logger(),
		name:   "recommend-service",
	}
}

// Serve implements suture.Service.
func (s *RecommendService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Dur("report_interval", s.config.ReportInterval).
		Msg("recommendation service starting")

	if s.config.WarmOnStartup && !s.warmed {
		if err := s.warm(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Msg("cache warmup failed; caches fill on demand")
		}
	}

	ticker := time.NewTicker(s.config.ReportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			s.logger.Info().Msg("recommendation service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.report()
		}
	}
}

func (s *RecommendService) warm(ctx context.Context) error {
	if s.config.WarmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.WarmTimeout)
		defer cancel()
	}

	start := time.Now()
	n, err := s.engine.Warm(ctx)
	if err != nil {
		return err
	}
	s.warmed = true
	s.logger.Info().
		Int("entries", n).
		Dur("duration", time.Since(start)).
		Msg("engine caches warmed")
	return nil
}

func (s *RecommendService) report() {
	stats := s.engine.Stats()
	s.logger.Info().
		Int64("requests", stats.Requests).
		Int64("errors", stats.Errors).
		Float64("similarity_hit_ratio", stats.SimilarityCache.HitRatio()).
		Int("similarity_entries", stats.SimilarityCache.Size).
		Float64("user_mean_hit_ratio", stats.UserMeanCache.HitRatio()).
		Int("user_mean_entries", stats.UserMeanCache.Size).
		Msg("engine stats")
}

// String names the service in suture events.
func (s *RecommendService) String() string {
	return s.name
}
