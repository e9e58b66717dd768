// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cityrec/internal/models"
)

// HealthLive handles GET /api/v1/health/live. It only reports that the
// process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, h.healthStatus("alive"), 0, time.Time{})
}

// HealthReady handles GET /api/v1/health/ready. The service is ready once at
// least one city is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	status := h.healthStatus("ready")
	if !status.DatasetLoaded {
		status.Status = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   status,
			Metadata: models.Metadata{
				Timestamp: time.Now().UTC(),
			},
			Error: &models.APIError{
				Code:    ErrCodeUnavailable,
				Message: "No dataset loaded",
			},
		})
		return
	}
	respondSuccess(w, status, 0, time.Time{})
}

func (h *Handler) healthStatus(state string) models.HealthStatus {
	cities := 0
	if h.catalog != nil {
		cities = len(h.catalog.Cities())
	}
	return models.HealthStatus{
		Status:        state,
		Version:       h.version,
		DatasetLoaded: cities > 0,
		Cities:        cities,
		Uptime:        time.Since(h.startTime).Seconds(),
	}
}
