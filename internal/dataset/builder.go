// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"fmt"
	"sort"

	"github.com/tomtom215/cityrec/internal/models"
)

// Builder accumulates records and produces an immutable Repository.
// A Builder is not safe for concurrent use.
type Builder struct {
	cities map[string]*cityData
	built  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{cities: make(map[string]*cityData)}
}

func (b *Builder) city(name string) *cityData {
	c, ok := b.cities[name]
	if !ok {
		c = newCityData()
		b.cities[name] = c
	}
	return c
}

// AddCity registers a city even if it ends up with no records.
func (b *Builder) AddCity(city string) *Builder {
	b.city(city)
	return b
}

// AddBusiness adds a business to a city. Business ids must be unique per city.
func (b *Builder) AddBusiness(city string, biz models.Business) error {
	if biz.BusinessID == "" {
		return fmt.Errorf("business in %q has empty id: %w", city, ErrInvalidState)
	}
	c := b.city(city)
	if _, dup := c.businessIdx[biz.BusinessID]; dup {
		return fmt.Errorf("duplicate business %q in %q: %w", biz.BusinessID, city, ErrInvalidState)
	}
	if biz.City == "" {
		biz.City = city
	}
	c.businessIdx[biz.BusinessID] = len(c.businesses)
	c.businesses = append(c.businesses, biz)
	return nil
}

// AddUser adds a user to a city. Re-adding a known id replaces its name.
func (b *Builder) AddUser(city string, user models.User) error {
	if user.UserID == "" {
		return fmt.Errorf("user in %q has empty id: %w", city, ErrInvalidState)
	}
	if user.City == "" {
		user.City = city
	}
	c := b.city(city)
	if pos, ok := c.userIdx[user.UserID]; ok {
		c.users[pos] = user
		return nil
	}
	c.userIdx[user.UserID] = len(c.users)
	c.users = append(c.users, user)
	return nil
}

// AddReview adds a review. Reviewers not yet known are registered as users
// so that every review's user resolves within the city.
func (b *Builder) AddReview(city string, review models.Review) error {
	if review.UserID == "" || review.BusinessID == "" {
		return fmt.Errorf("review %q in %q lacks user or business id: %w", review.ReviewID, city, ErrInvalidState)
	}
	if review.City == "" {
		review.City = city
	}
	c := b.city(city)
	if _, ok := c.userIdx[review.UserID]; !ok {
		c.userIdx[review.UserID] = len(c.users)
		c.users = append(c.users, models.User{UserID: review.UserID, City: city})
	}
	pos := len(c.reviews)
	c.reviews = append(c.reviews, review)
	c.byUser[review.UserID] = append(c.byUser[review.UserID], pos)
	c.byBusiness[review.BusinessID] = append(c.byBusiness[review.BusinessID], pos)
	return nil
}

// AddTip adds a tip to a city.
func (b *Builder) AddTip(city string, tip models.Tip) {
	if tip.City == "" {
		tip.City = city
	}
	c := b.city(city)
	c.tips = append(c.tips, tip)
}

// AddCheckin adds a checkin record to a city.
func (b *Builder) AddCheckin(city string, checkin models.Checkin) {
	if checkin.City == "" {
		checkin.City = city
	}
	c := b.city(city)
	c.checkins = append(c.checkins, checkin)
}

// Build freezes the accumulated records. The Builder cannot be reused.
func (b *Builder) Build() (*Repository, error) {
	if b.built {
		return nil, fmt.Errorf("builder already used: %w", ErrInvalidState)
	}
	b.built = true

	names := make([]string, 0, len(b.cities))
	for name := range b.cities {
		names = append(names, name)
	}
	sort.Strings(names)

	repo := &Repository{cities: b.cities, names: names}
	b.cities = nil
	return repo, nil
}
