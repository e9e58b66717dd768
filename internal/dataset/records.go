// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/cityrec/internal/models"
)

// Raw records as they appear in the newline-delimited JSON dataset files.
// Categories and checkin dates are comma separated strings on disk. Both the
// JSON loader and the DuckDB importer decode into these types.

// BusinessRecord is one line of business.json.
type BusinessRecord struct {
	BusinessID string  `json:"business_id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Stars      float64 `json:"stars"`
	Categories string  `json:"categories"`
}

// ReviewRecord is one line of review.json.
type ReviewRecord struct {
	ReviewID   string  `json:"review_id"`
	UserID     string  `json:"user_id"`
	BusinessID string  `json:"business_id"`
	Stars      float64 `json:"stars"`
}

// UserRecord is one line of user.json.
type UserRecord struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// TipRecord is one line of tip.json.
type TipRecord struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	Text       string `json:"text"`
	Date       string `json:"date"`
}

// CheckinRecord is one line of checkin.json.
type CheckinRecord struct {
	BusinessID string `json:"business_id"`
	Date       string `json:"date"`
}

// reviewNamespace seeds deterministic ids for reviews that arrive without one.
var reviewNamespace = uuid.MustParse("6f1c1b9e-3a55-4d0c-9a57-5b8f0c2d7e41")

// ToModel maps the record to a business of city.
func (r BusinessRecord) ToModel(city string) models.Business {
	b := models.Business{
		BusinessID: r.BusinessID,
		Name:       r.Name,
		Address:    r.Address,
		City:       r.City,
		Stars:      r.Stars,
		Categories: models.SplitCategories(r.Categories),
	}
	if b.City == "" {
		b.City = city
	}
	return b
}

// ToModel converts a review. line is the 1-based position in the source file
// and keeps generated ids stable across loads of the same file.
func (r ReviewRecord) ToModel(city string, line int) models.Review {
	id := r.ReviewID
	if id == "" {
		key := fmt.Sprintf("%s|%s|%s|%d", city, r.UserID, r.BusinessID, line)
		id = uuid.NewSHA1(reviewNamespace, []byte(key)).String()
	}
	return models.Review{
		ReviewID:   id,
		UserID:     r.UserID,
		BusinessID: r.BusinessID,
		Stars:      r.Stars,
		City:       city,
	}
}

// ToModel maps the record to a user of city.
func (r UserRecord) ToModel(city string) models.User {
	return models.User{UserID: r.UserID, Name: r.Name, City: city}
}

// ToModel maps the record to a tip of city.
func (r TipRecord) ToModel(city string) models.Tip {
	return models.Tip{
		UserID:     r.UserID,
		BusinessID: r.BusinessID,
		Text:       r.Text,
		Date:       r.Date,
		City:       city,
	}
}

// ToModel maps the record to a checkin of city.
func (r CheckinRecord) ToModel(city string) models.Checkin {
	return models.Checkin{
		BusinessID: r.BusinessID,
		Dates:      models.SplitDates(r.Date),
		City:       city,
	}
}
