// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a business or user id does not exist in a city.
	ErrNotFound = errors.New("not found")

	// ErrUnknownCity is returned when a city has not been loaded.
	ErrUnknownCity = fmt.Errorf("unknown city: %w", ErrNotFound)

	// ErrInvalidState marks data that breaks a scoring precondition.
	ErrInvalidState = errors.New("invalid dataset state")
)
