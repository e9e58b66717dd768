// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package models defines the data structures shared across Cityrec.

Dataset Models:

  - Business: a business listed in one city, with its global star rating
    and category list
  - Review: a single user's star rating of a business
  - User: a reviewer registered in a city
  - Tip, Checkin: auxiliary records carried through for statistics

API Models:

  - APIResponse: standard response wrapper
  - APIError: error details
  - Metadata: response metadata (timestamp, query time)
  - CityStats: per-city dataset counts

All dataset models are immutable once loaded. The city name is the partition
key: every record belongs to exactly one city and no operation spans cities.
*/
package models
