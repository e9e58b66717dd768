// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package models

import (
	"strings"
)

// Business is a single listing in a city.
//
// Categories are stored in the raw dataset as one comma separated string
// ("Pizza, Italian, Bars"); SplitCategories turns that into a slice.
type Business struct {
	BusinessID string   `json:"business_id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Stars      float64  `json:"stars"`
	Categories []string `json:"categories"`
}

// HasCategories reports whether the business carries at least one category.
func (b Business) HasCategories() bool {
	return len(b.Categories) > 0
}

// Review is one user's star rating (1-5) of one business.
// The same user may review the same business more than once.
type Review struct {
	ReviewID   string  `json:"review_id"`
	UserID     string  `json:"user_id"`
	BusinessID string  `json:"business_id"`
	Stars      float64 `json:"stars"`
	City       string  `json:"city"`
}

// User is a reviewer in a city.
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	City   string `json:"city"`
}

// Tip is a short free-text note a user left for a business.
type Tip struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	Text       string `json:"text"`
	Date       string `json:"date"`
	City       string `json:"city"`
}

// Checkin lists the check-in timestamps recorded for a business.
type Checkin struct {
	BusinessID string   `json:"business_id"`
	Dates      []string `json:"dates"`
	City       string   `json:"city"`
}

// CityStats summarizes the records loaded for one city.
type CityStats struct {
	City       string   `json:"city"`
	Businesses int      `json:"businesses"`
	Reviews    int      `json:"reviews"`
	Users      int      `json:"users"`
	Tips       int      `json:"tips"`
	Checkins   int      `json:"checkins"`
	Categories []string `json:"categories,omitempty"`
}

// SplitCategories splits a raw category string on ", ".
// An empty string yields nil.
func SplitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ", ")
}

// SplitDates splits the raw comma separated checkin date list.
func SplitDates(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
