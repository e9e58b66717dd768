// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/cityrec/internal/models"
)

// Store is the read interface the recommendation engine depends on.
// Every method is scoped to a single city.
type Store interface {
	// Cities returns all loaded city names in sorted order.
	Cities() []string

	// Businesses returns the businesses of a city in dataset order.
	// An unknown city yields an empty slice.
	Businesses(city string) []models.Business

	// Reviews returns every review of a city in dataset order.
	Reviews(city string) []models.Review

	// ReviewsByUser returns the reviews written by userID, in dataset order.
	// A limit <= 0 returns all of them.
	ReviewsByUser(city, userID string, limit int) []models.Review

	// ReviewsByBusiness returns the reviews of businessID, in dataset order.
	ReviewsByBusiness(city, businessID string) []models.Review

	// BusinessByID looks up a business, returning ErrNotFound when absent.
	BusinessByID(city, businessID string) (models.Business, error)

	// UserByID looks up a user, returning ErrNotFound when absent.
	UserByID(city, userID string) (models.User, error)
}

// cityData holds one city's records plus the indexes over them.
// Index maps store positions into the record slices.
type cityData struct {
	businesses  []models.Business
	businessIdx map[string]int

	users   []models.User
	userIdx map[string]int

	reviews    []models.Review
	byUser     map[string][]int
	byBusiness map[string][]int

	tips     []models.Tip
	checkins []models.Checkin
}

func newCityData() *cityData {
	return &cityData{
		businessIdx: make(map[string]int),
		userIdx:     make(map[string]int),
		byUser:      make(map[string][]int),
		byBusiness:  make(map[string][]int),
	}
}

// Repository is an immutable, in-memory Store.
type Repository struct {
	cities map[string]*cityData
	names  []string
}

// Compile-time interface check
var _ Store = (*Repository)(nil)

// Cities implements Store.
func (r *Repository) Cities() []string {
	return slices.Clone(r.names)
}

// HasCity reports whether the city was loaded.
func (r *Repository) HasCity(city string) bool {
	_, ok := r.cities[city]
	return ok
}

// Businesses implements Store.
func (r *Repository) Businesses(city string) []models.Business {
	c, ok := r.cities[city]
	if !ok {
		return nil
	}
	return slices.Clone(c.businesses)
}

// Reviews implements Store.
func (r *Repository) Reviews(city string) []models.Review {
	c, ok := r.cities[city]
	if !ok {
		return nil
	}
	return slices.Clone(c.reviews)
}

// Users returns the users of a city in dataset order.
func (r *Repository) Users(city string) []models.User {
	c, ok := r.cities[city]
	if !ok {
		return nil
	}
	return slices.Clone(c.users)
}

// ReviewsByUser implements Store.
func (r *Repository) ReviewsByUser(city, userID string, limit int) []models.Review {
	c, ok := r.cities[city]
	if !ok {
		return nil
	}
	return c.collect(c.byUser[userID], limit)
}

// ReviewsByBusiness implements Store.
func (r *Repository) ReviewsByBusiness(city, businessID string) []models.Review {
	c, ok := r.cities[city]
	if !ok {
		return nil
	}
	return c.collect(c.byBusiness[businessID], 0)
}

func (c *cityData) collect(idx []int, limit int) []models.Review {
	if limit > 0 && limit < len(idx) {
		idx = idx[:limit]
	}
	out := make([]models.Review, len(idx))
	for i, pos := range idx {
		out[i] = c.reviews[pos]
	}
	return out
}

// BusinessByID implements Store.
func (r *Repository) BusinessByID(city, businessID string) (models.Business, error) {
	c, ok := r.cities[city]
	if !ok {
		return models.Business{}, fmt.Errorf("city %q: %w", city, ErrUnknownCity)
	}
	pos, ok := c.businessIdx[businessID]
	if !ok {
		return models.Business{}, fmt.Errorf("business %q in %q: %w", businessID, city, ErrNotFound)
	}
	return c.businesses[pos], nil
}

// UserByID implements Store.
func (r *Repository) UserByID(city, userID string) (models.User, error) {
	c, ok := r.cities[city]
	if !ok {
		return models.User{}, fmt.Errorf("city %q: %w", city, ErrUnknownCity)
	}
	pos, ok := c.userIdx[userID]
	if !ok {
		return models.User{}, fmt.Errorf("user %q in %q: %w", userID, city, ErrNotFound)
	}
	return c.users[pos], nil
}

// Categories returns the distinct trimmed categories used by a city's
// businesses, in first-seen order.
func (r *Repository) Categories(city string) []string {
	c, ok := r.cities[city]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for i := range c.businesses {
		for _, cat := range c.businesses[i].Categories {
			cat = strings.TrimSpace(cat)
			if cat == "" {
				continue
			}
			if _, dup := seen[cat]; dup {
				continue
			}
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}

// Stats returns record counts for a city.
func (r *Repository) Stats(city string) (models.CityStats, error) {
	c, ok := r.cities[city]
	if !ok {
		return models.CityStats{}, fmt.Errorf("city %q: %w", city, ErrUnknownCity)
	}
	return models.CityStats{
		City:       city,
		Businesses: len(c.businesses),
		Reviews:    len(c.reviews),
		Users:      len(c.users),
		Tips:       len(c.tips),
		Checkins:   len(c.checkins),
		Categories: r.Categories(city),
	}, nil
}
