// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cityrec/internal/models"
	"github.com/tomtom215/cityrec/internal/recommend"
)

// DefaultRequestTimeout bounds a single recommendation call.
const DefaultRequestTimeout = 10 * time.Second

// Recommender is the engine surface the handlers need.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) ([]recommend.Recommendation, error)
}

// CityCatalog describes the loaded dataset.
type CityCatalog interface {
	Cities() []string
	Stats(city string) (models.CityStats, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendation endpoint
//   - handlers_cities.go: dataset shape endpoints
//   - handlers_health.go: liveness and readiness
type Handler struct {
	engine         Recommender
	catalog        CityCatalog
	version        string
	startTime      time.Time
	requestTimeout time.Duration
}

// NewHandler creates an API handler.
func NewHandler(engine Recommender, catalog CityCatalog, version string) *Handler {
	return &Handler{
		engine:         engine,
		catalog:        catalog,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: DefaultRequestTimeout,
	}
}

// SetRequestTimeout overrides the per-request engine deadline. Non-positive values are ignored.
func (h *Handler) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		h.requestTimeout = d
	}
}
