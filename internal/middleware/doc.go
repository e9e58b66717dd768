// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package middleware provides HTTP instrumentation shared by the API router.

PrometheusMetrics records, per request:

  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

The endpoint label is the chi route pattern, which keeps label cardinality
bounded no matter which cities or ids clients ask for. Mount it with r.Use
on a chi router so the pattern is known once the handler returns.
*/
package middleware
