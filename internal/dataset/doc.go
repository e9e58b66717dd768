// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package dataset provides read-only, city-partitioned access to the business,
review, user, tip and checkin records the recommender scores against.

A Repository is assembled once through a Builder and never mutated afterwards,
so it can be shared by any number of concurrent readers without locking.
The Store interface is what the recommendation engine consumes; tests inject
small synthetic repositories built in-process.

Loading:

  - LoadDir reads a directory tree with one sub-directory per city, each holding
    newline-delimited JSON files (business.json, review.json, user.json,
    tip.json, checkin.json)
  - the database package offers an alternative DuckDB-backed importer that
    feeds the same Builder

Errors:

  - ErrNotFound: unknown business or user id
  - ErrUnknownCity: unknown city (also matches ErrNotFound)
  - ErrInvalidState: the data violates a scoring precondition, for example a
    reviewer whose mean rating is needed but who has no reviews
*/
package dataset
