// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package logging provides the process-wide zerolog logger for Cityrec.

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Str("city", city).Msg("Dataset loaded")
	logging.Ctx(ctx).Debug().Msg("Scoring request")

Components that need their own logger take a zerolog.Logger at construction
time, usually derived with WithComponent. Request-scoped ids travel through
context.Context and are added by Ctx.

The SlogHandler adapter lets slog-only libraries (sutureslog) write through
the same zerolog pipeline.

Always terminate event chains with Msg or Send, otherwise nothing is written.
*/
package logging
