// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

// Package recommend implements city-scoped business recommendations on top of
// a read-only dataset.Store.
//
// # Components
//
//   - Similarity: pairwise business similarity from shared reviewers, centered
//     on each reviewer's mean rating in the city
//   - Predictor: similarity-weighted rating prediction for a user and business,
//     smoothed by the business's own star rating
//   - CategoryMatcher: ranks businesses by category overlap with a query set
//   - Engine: blends the above into a bounded recommendation list
//
// # Modes
//
// The Engine picks a mode from which ids the Request carries:
//
//   - user + business: similar businesses ranked by predicted rating, filled
//     with category matches, padded with top-rated businesses, shuffled
//   - business only: most similar businesses plus category matches, padded
//     and shuffled
//   - user only: every business ranked by predicted rating
//   - neither: businesses ranked by star rating
//
// # Scoring Details
//
// Two behaviors intentionally differ from textbook collaborative filtering and
// are kept for compatibility with previously published recommendations:
//
//   - similarity divides the centered-product sum by 2×|shared reviewers|
//     instead of normalizing by rating variances
//   - the user-aware category matcher truncates the overlap ranking to n
//     before re-ordering by predicted rating, so it is not a true top-n by
//     predicted rating
//
// # Usage
//
//	engine, err := recommend.NewEngine(repo, recommend.DefaultConfig(), logger)
//	recs, err := engine.Recommend(ctx, recommend.Request{
//	    UserID: "u1",
//	    City:   "westlake",
//	    N:      10,
//	})
//
// # Thread Safety
//
// The Engine is safe for concurrent use. The dataset is immutable, the memo
// caches are internally locked, and the random source is guarded by a mutex.
// Pass WithRand to make city selection and shuffling deterministic.
package recommend
