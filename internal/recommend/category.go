// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/models"
)

// CategoryMatcher ranks businesses by how many categories they share with a
// query set. Categories compare case-sensitively after trimming whitespace.
type CategoryMatcher struct {
	store     dataset.Store
	predictor *Predictor
}

// NewCategoryMatcher creates a CategoryMatcher. predictor is only needed by
// BestForUser.
func NewCategoryMatcher(store dataset.Store, predictor *Predictor) *CategoryMatcher {
	return &CategoryMatcher{store: store, predictor: predictor}
}

// Rank returns every business in the city that carries at least one of the
// query categories, ordered by shared count descending. Ties keep dataset order.
func (m *CategoryMatcher) Rank(city string, categories []string) []CategoryMatch {
	query := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			query[c] = struct{}{}
		}
	}
	if len(query) == 0 {
		return nil
	}

	var matches []CategoryMatch
	for _, b := range m.store.Businesses(city) {
		shared := 0
		for _, c := range b.Categories {
			if _, ok := query[strings.TrimSpace(c)]; ok {
				shared++
			}
		}
		if shared > 0 {
			matches = append(matches, CategoryMatch{Business: b, Shared: shared})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Shared > matches[j].Shared
	})
	return matches
}

// BestForUser takes the category ranking, drops excluded ids, keeps the first
// n and then orders those n by the user's predicted rating, descending.
//
// The cut to n happens before the re-ordering, so a business with a high
// predicted rating but low category overlap can be missed.
func (m *CategoryMatcher) BestForUser(city, userID string, categories []string, exclude map[string]struct{}, n int) ([]models.Business, error) {
	if n <= 0 {
		return nil, nil
	}

	picked := make([]scoredBusiness, 0, n)
	for _, match := range m.Rank(city, categories) {
		if len(picked) == n {
			break
		}
		if _, skip := exclude[match.Business.BusinessID]; skip {
			continue
		}
		picked = append(picked, scoredBusiness{business: match.Business})
	}

	for i := range picked {
		score, err := m.predictor.Predict(city, userID, picked[i].business.BusinessID)
		if err != nil {
			return nil, err
		}
		picked[i].score = score
	}
	sortByScore(picked)
	return businessesOf(picked), nil
}

// sortByScore orders by score descending, keeping input order for ties.
func sortByScore(items []scoredBusiness) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
}

func businessesOf(items []scoredBusiness) []models.Business {
	out := make([]models.Business, len(items))
	for i := range items {
		out[i] = items[i].business
	}
	return out
}
