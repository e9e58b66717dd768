// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/cityrec/internal/models"
)

// ErrInvalidRequest is returned for requests the engine cannot serve,
// such as a negative result count.
var ErrInvalidRequest = errors.New("invalid recommendation request")

// Mode is the recommendation strategy selected by a Request.
type Mode int

const (
	// ModeTopRated ranks businesses by star rating. No user or business given.
	ModeTopRated Mode = iota

	// ModeUser ranks every business by the user's predicted rating.
	ModeUser

	// ModeBusiness blends similar and category-related businesses.
	ModeBusiness

	// ModeUserBusiness blends similar businesses ranked for the user with
	// category matches ranked for the user.
	ModeUserBusiness
)

// String returns the metric and log label of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTopRated:
		return "top_rated"
	case ModeUser:
		return "user"
	case ModeBusiness:
		return "business"
	case ModeUserBusiness:
		return "user_business"
	default:
		return "unknown"
	}
}

// Request describes one recommendation call. Every field is optional.
type Request struct {
	// UserID personalizes the result when set.
	UserID string `json:"user_id,omitempty" validate:"omitempty,max=64,entityid"`

	// BusinessID anchors the result on a reference business when set.
	BusinessID string `json:"business_id,omitempty" validate:"omitempty,max=64,entityid"`

	// City scopes the call. Empty picks a random loaded city.
	City string `json:"city,omitempty" validate:"omitempty,max=128,cityname"`

	// N is the maximum number of results. Zero means Config.Limits.DefaultN.
	N int `json:"n,omitempty" validate:"min=0,max=1000"`
}

// Mode derives the strategy from the ids present.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (r Request) Mode() Mode {
	switch {
	case r.UserID != "" && r.BusinessID != "":
		return ModeUserBusiness
	case r.BusinessID != "":
		return ModeBusiness
	case r.UserID != "":
		return ModeUser
	default:
		return ModeTopRated
	}
}

// Recommendation is one returned business, flattened for presentation.
// Stars is text, formatted like "4.0" or "3.5".
type Recommendation struct {
	BusinessID string `json:"business_id"`
	Stars      string `json:"stars"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Address    string `json:"address"`
}

// CategoryMatch pairs a business with the number of query categories it carries.
type CategoryMatch struct {
	Business models.Business
	Shared   int
}

// scoredBusiness is a business with a ranking score (similarity or predicted rating).
type scoredBusiness struct {
	business models.Business
	score    float64
}

// FormatStars renders a star rating the way it is shown to users:
// the shortest exact decimal, always with a fractional part ("4.0", "4.5").
func FormatStars(stars float64) string {
	s := strconv.FormatFloat(stars, 'f', -1, 64)
	if math.IsInf(stars, 0) || math.IsNaN(stars) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// NewRecommendation maps a business to its presentation record.
func NewRecommendation(b models.Business) Recommendation {
	return Recommendation{
		BusinessID: b.BusinessID,
		Stars:      FormatStars(b.Stars),
		Name:       b.Name,
		City:       b.City,
		Address:    b.Address,
	}
}
