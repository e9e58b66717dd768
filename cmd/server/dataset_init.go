// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cityrec/internal/config"
	"github.com/tomtom215/cityrec/internal/database"
	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/metrics"
)

// loadDataset reads the configured dataset with the configured loader and
// publishes per-city record gauges.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadDataset(ctx context.Context, cfg *config.DatasetConfig, logger zerolog.Logger) (*dataset.Repository, error) {
	opts := dataset.LoadOptions{Cities: cfg.Cities}
	start := time.Now()

	var (
		repo  *dataset.Repository
		stats dataset.LoadStats
		err   error
	)
	switch cfg.Format {
	case config.FormatJSON:
		repo, stats, err = dataset.LoadDir(ctx, cfg.Path, opts)
	case config.FormatDuckDB:
		repo, stats, err = importWithDuckDB(ctx, cfg, opts)
	default:
		return nil, fmt.Errorf("unknown dataset format %q", cfg.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", cfg.Path, err)
	}
	metrics.RecordDatasetLoad(cfg.Format, time.Since(start))
	publishDatasetGauges(repo)

	logger.Info().
		Str("path", cfg.Path).
		Str("format", cfg.Format).
		Int("cities", stats.Cities).
		Int("businesses", stats.Businesses).
		Int("reviews", stats.Reviews).
		Int("users", stats.Users).
		Int("tips", stats.Tips).
		Int("checkins", stats.Checkins).
		Dur("duration", time.Since(start)).
		Msg("dataset loaded")
	return repo, nil
}

// importWithDuckDB runs the import on a throwaway in-memory DuckDB. The
// connection is closed once the repository is built.
func importWithDuckDB(ctx context.Context, cfg *config.DatasetConfig, opts dataset.LoadOptions) (*dataset.Repository, dataset.LoadStats, error) {
	db, err := database.Open(database.Config{MaxMemory: cfg.DuckDBMemory})
	if err != nil {
		return nil, dataset.LoadStats{}, err
	}
	defer func() {
		_ = db.Close()
	}()
	return db.ImportDir(ctx, cfg.Path, opts)
}

func publishDatasetGauges(repo *dataset.Repository) {
	for _, city := range repo.Cities() {
		s, err := repo.Stats(city)
		if err != nil {
			continue
		}
		metrics.SetDatasetRecords(city, "business", s.Businesses)
		metrics.SetDatasetRecords(city, "review", s.Reviews)
		metrics.SetDatasetRecords(city, "user", s.Users)
		metrics.SetDatasetRecords(city, "tip", s.Tips)
		metrics.SetDatasetRecords(city, "checkin", s.Checkins)
	}
}
