// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/cityrec/internal/cache"
	"github.com/tomtom215/cityrec/internal/dataset"
)

type userKey struct {
	city string
	user string
}

// pairKey stores the two business ids in ascending order so that (a, b) and
// (b, a) share one cache entry.
type pairKey struct {
	city string
	lo   string
	hi   string
}

func newPairKey(city, b1, b2 string) pairKey {
	if b2 < b1 {
		b1, b2 = b2, b1
	}
	return pairKey{city: city, lo: b1, hi: b2}
}

// Similarity scores how alike two businesses are judged by the users who
// reviewed both of them.
//
// For the shared reviewers S of b1 and b2:
//
//	sim(b1, b2) = Σ_{r∈S} (r_b1 − mean_r)(r_b2 − mean_r) / (2·|S|)
//
// where mean_r is r's mean rating over all their reviews in the city. A
// business is 1.0 similar to itself and 0.0 similar to a business it shares
// no reviewer with. When a user reviewed the same business more than once
// their last review counts.
type Similarity struct {
	store dataset.Store
	means *cache.LRU[userKey, float64]
	pairs *cache.LRU[pairKey, float64]
}

// NewSimilarity creates a Similarity over store. Disabled caching recomputes
// every value on demand.
func NewSimilarity(store dataset.Store, cfg CacheConfig) *Similarity {
	s := &Similarity{store: store}
	if cfg.Enabled {
		s.means = cache.NewLRU[userKey, float64](cfg.UserMeanEntries)
		s.pairs = cache.NewLRU[pairKey, float64](cfg.SimilarityEntries)
	}
	return s
}

// UserMean returns the mean star rating a user gave across all of their
// reviews in the city. A user without reviews has no mean and yields
// dataset.ErrInvalidState.
func (s *Similarity) UserMean(city, userID string) (float64, error) {
	if s.means == nil {
		return s.userMean(city, userID)
	}
	return s.means.GetOrCompute(userKey{city: city, user: userID}, func() (float64, error) {
		return s.userMean(city, userID)
	})
}

func (s *Similarity) userMean(city, userID string) (float64, error) {
	reviews := s.store.ReviewsByUser(city, userID, 0)
	if len(reviews) == 0 {
		return 0, fmt.Errorf("user %q has no reviews in %q: %w", userID, city, dataset.ErrInvalidState)
	}
	var sum float64
	for i := range reviews {
		sum += reviews[i].Stars
	}
	return sum / float64(len(reviews)), nil
}

// Between returns the similarity of two businesses in a city. Both ids must
// exist, otherwise dataset.ErrNotFound is returned. The result is symmetric.
func (s *Similarity) Between(city, b1, b2 string) (float64, error) {
	if _, err := s.store.BusinessByID(city, b1); err != nil {
		return 0, err
	}
	if _, err := s.store.BusinessByID(city, b2); err != nil {
		return 0, err
	}
	if b1 == b2 {
		return 1.0, nil
	}

	key := newPairKey(city, b1, b2)
	if s.pairs == nil {
		return s.compute(key)
	}
	return s.pairs.GetOrCompute(key, func() (float64, error) {
		return s.compute(key)
	})
}

// compute evaluates the similarity of key.lo and key.hi. Shared reviewers are
// visited in sorted order so that the floating point sum does not depend on
// argument order.
func (s *Similarity) compute(key pairKey) (float64, error) {
	loRatings := latestRatings(s.store, key.city, key.lo)
	if len(loRatings) == 0 {
		return 0, nil
	}
	hiRatings := latestRatings(s.store, key.city, key.hi)

	shared := make([]string, 0, min(len(loRatings), len(hiRatings)))
	for user := range hiRatings {
		if _, ok := loRatings[user]; ok {
			shared = append(shared, user)
		}
	}
	if len(shared) == 0 {
		return 0, nil
	}
	sort.Strings(shared)

	var sum float64
	for _, user := range shared {
		mean, err := s.UserMean(key.city, user)
		if err != nil {
			return 0, err
		}
		sum += (loRatings[user] - mean) * (hiRatings[user] - mean)
	}
	return sum / float64(2*len(shared)), nil
}

// latestRatings maps each reviewer of a business to the rating of their last
// review of it.
func latestRatings(store dataset.Store, city, businessID string) map[string]float64 {
	reviews := store.ReviewsByBusiness(city, businessID)
	ratings := make(map[string]float64, len(reviews))
	for i := range reviews {
		ratings[reviews[i].UserID] = reviews[i].Stars
	}
	return ratings
}

// CacheStats returns the similarity and user-mean cache statistics.
// Both are zero when caching is disabled.
func (s *Similarity) CacheStats() (pairs, means cache.Stats) {
	if s.pairs != nil {
		pairs = s.pairs.Stats()
	}
	if s.means != nil {
		means = s.means.Stats()
	}
	return pairs, means
}
