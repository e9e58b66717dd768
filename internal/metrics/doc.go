// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package metrics provides Prometheus instrumentation for Cityrec.

All collectors are registered on the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - recommend_requests_total: Recommendation calls (counter)
    Labels: mode (user_business, business, user, top_rated), outcome
  - recommend_duration_seconds: Engine latency (histogram)
    Labels: mode
  - recommend_results: Result list size (histogram)
  - recommend_cache_hits_total, recommend_cache_misses_total: memo cache
    counters (counter), Labels: cache (similarity, user_mean)
  - recommend_cache_entries: memo cache size (gauge), Labels: cache

Dataset Metrics:
  - dataset_load_duration_seconds: Full dataset load time (histogram)
    Labels: source (json, duckdb)
  - dataset_records: Records loaded per city (gauge)
    Labels: city, kind
  - duckdb_query_duration_seconds, duckdb_query_errors_total: DuckDB import
    queries, Labels: operation, table

HTTP Metrics:
  - api_requests_total: Labels: method, endpoint, status_code
  - api_request_duration_seconds: Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: Labels: endpoint
*/
package metrics
