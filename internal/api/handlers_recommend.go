// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/logging"
	"github.com/tomtom215/cityrec/internal/recommend"
	"github.com/tomtom215/cityrec/internal/validation"
)

// Recommendations handles GET /api/v1/recommendations.
//
// Query parameters (all optional): user_id, business_id, city, n.
// The combination of user_id and business_id selects the strategy.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRecommendRequest(w, r)
	if !ok {
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	recs, err := h.engine.Recommend(ctx, req)
	if err != nil {
		h.respondEngineError(w, r, req, err)
		return
	}
	if recs == nil {
		recs = []recommend.Recommendation{}
	}

	respondSuccess(w, recs, len(recs), start)
}

func parseRecommendRequest(w http.ResponseWriter, r *http.Request) (recommend.Request, bool) {
	q := r.URL.Query()
	req := recommend.Request{
		UserID:     strings.TrimSpace(q.Get("user_id")),
		BusinessID: strings.TrimSpace(q.Get("business_id")),
		City:       q.Get("city"),
	}

	if raw := q.Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondErrorWithDetails(w, http.StatusBadRequest, ErrCodeValidation,
				"n must be an integer", map[string]interface{}{"field": "n", "value": raw}, nil)
			return req, false
		}
		req.N = n
	}
	return req, true
}

// respondEngineError maps engine failures onto HTTP statuses.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, req recommend.Request, err error) {
	logger := logging.Ctx(r.Context())

	switch {
	case errors.Is(err, dataset.ErrUnknownCity):
		respondErrorWithDetails(w, http.StatusNotFound, ErrCodeNotFound, "City not found",
			map[string]interface{}{"city": req.City}, nil)
	case errors.Is(err, dataset.ErrNotFound):
		respondErrorWithDetails(w, http.StatusNotFound, ErrCodeNotFound, "Business or user not found",
			notFoundDetails(req), nil)
	case errors.Is(err, recommend.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, dataset.ErrInvalidState):
		logger.Error().Err(err).Msg("dataset integrity violation")
		respondError(w, http.StatusInternalServerError, ErrCodeDataIntegrity, "Dataset cannot satisfy this request", nil)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn().Err(err).Dur("timeout", h.requestTimeout).Msg("recommendation timed out")
		respondError(w, http.StatusGatewayTimeout, ErrCodeTimeout, "Recommendation timed out", nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate recommendations", err)
	}
}

//nolint:gocritic // hugeParam
func notFoundDetails(req recommend.Request) map[string]interface{} {
	details := map[string]interface{}{"city": req.City}
	if req.UserID != "" {
		details["user_id"] = req.UserID
	}
	if req.BusinessID != "" {
		details["business_id"] = req.BusinessID
	}
	return details
}
