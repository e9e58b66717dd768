// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/models"
	"github.com/tomtom215/cityrec/internal/validation"
)

// Cities handles GET /api/v1/cities and lists per-city record counts.
func (h *Handler) Cities(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	names := h.catalog.Cities()
	out := make([]models.CityStats, 0, len(names))
	for _, name := range names {
		stats, err := h.catalog.Stats(name)
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to read city stats", err)
			return
		}
		out = append(out, stats)
	}
	respondSuccess(w, out, len(out), start)
}

// City handles GET /api/v1/cities/{city}.
func (h *Handler) City(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	city := chi.URLParam(r, "city")
	if err := validation.GetValidator().Var(city, "required,max=128,cityname"); err != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, ErrCodeValidation, "Invalid city name",
			map[string]interface{}{"field": "city"}, nil)
		return
	}

	stats, err := h.catalog.Stats(city)
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		respondErrorWithDetails(w, http.StatusNotFound, ErrCodeNotFound, "City not found",
			map[string]interface{}{"city": city}, nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to read city stats", err)
		return
	}
	respondSuccess(w, stats, 0, start)
}
