// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package api provides the HTTP layer for Cityrec.

The surface is intentionally small. It hosts the recommendation engine and
exposes the loaded dataset's shape:

	GET /api/v1/recommendations?user_id=&business_id=&city=&n=
	GET /api/v1/cities
	GET /api/v1/cities/{city}
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics

Every JSON endpoint answers with models.APIResponse:

	{"status": "success", "data": [...], "metadata": {"timestamp": "...", "count": 3}}

Errors carry a machine readable code:

	VALIDATION_ERROR      400  bad query parameters
	NOT_FOUND             404  unknown city, business or user
	RATE_LIMIT_EXCEEDED   429  per-IP limit hit
	DATA_INTEGRITY_ERROR  500  dataset breaks a scoring precondition
	REQUEST_TIMEOUT       504  engine did not finish in time
	INTERNAL_ERROR        500  anything else

Middleware Stack (outermost first):

  - RequestIDWithLogging: X-Request-ID propagation into the logging context
  - chi RealIP and Recoverer
  - CORS (go-chi/cors)
  - Prometheus request metrics (internal/middleware)
  - APISecurityHeaders on /api/v1
  - Per-IP rate limiting (go-chi/httprate)

Usage:

	handler := api.NewHandler(engine, repo, version)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg))
	router := api.NewRouter(handler, mw)
	srv := &http.Server{Handler: router.SetupChi()}
*/
package api
