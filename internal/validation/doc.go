// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

// Package validation provides struct validation using go-playground/validator v10.
//
// The package keeps a thread-safe singleton validator, registers the
// application's custom tags and translates failures into the API's
// VALIDATION_ERROR shape. Field names in errors use the json tag of the
// field, so a failure on Request.UserID reports "user_id".
//
// # Custom Tags
//
//   - entityid: dataset identifier, letters, digits, '-' and '_' only
//   - cityname: printable city name that is safe to use as a directory name
//
// # Usage
//
//	req := recommend.Request{UserID: q.Get("user_id"), N: n}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
