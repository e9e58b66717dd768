// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package services provides suture.Service wrappers for Cityrec components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx) error contract and names itself through fmt.Stringer:

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - RecommendService: warms the engine's memo caches and reports engine
    statistics on an interval
*/
package services
