// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"github.com/tomtom215/cityrec/internal/dataset"
)

// Predictor estimates the rating a user would give a business.
//
// Every business b2 the user reviewed that is positively similar to the
// target contributes the user's raw rating of b2 with weight sim(target, b2).
// The target's own star rating always contributes with weight 1.0, so the
// weight sum never drops below 1 and a user with no signal gets the
// business's global rating back.
type Predictor struct {
	store      dataset.Store
	sim        *Similarity
	maxReviews int
}

// NewPredictor creates a Predictor. maxReviews caps how many of the user's
// reviews are considered; zero considers all of them.
func NewPredictor(store dataset.Store, sim *Similarity, maxReviews int) *Predictor {
	return &Predictor{store: store, sim: sim, maxReviews: maxReviews}
}

// Predict returns the predicted rating of businessID by userID.
// Unknown ids yield dataset.ErrNotFound.
func (p *Predictor) Predict(city, userID, businessID string) (float64, error) {
	sum, weight, err := p.weightedSum(city, userID, businessID)
	if err != nil {
		return 0, err
	}
	return sum / weight, nil
}

// weightedSum returns the numerator and the weight sum of the prediction.
func (p *Predictor) weightedSum(city, userID, businessID string) (sum, weight float64, err error) {
	target, err := p.store.BusinessByID(city, businessID)
	if err != nil {
		return 0, 0, err
	}
	if _, err := p.store.UserByID(city, userID); err != nil {
		return 0, 0, err
	}

	// Businesses in first-review order, each with the user's latest rating.
	reviews := p.store.ReviewsByUser(city, userID, p.maxReviews)
	order := make([]string, 0, len(reviews))
	ratings := make(map[string]float64, len(reviews))
	for i := range reviews {
		id := reviews[i].BusinessID
		if _, seen := ratings[id]; !seen {
			order = append(order, id)
		}
		ratings[id] = reviews[i].Stars
	}

	for _, b2 := range order {
		s, err := p.sim.Between(city, businessID, b2)
		if err != nil {
			return 0, 0, err
		}
		if s > 0 {
			sum += ratings[b2]
			weight += s
		}
	}

	sum += target.Stars
	weight += 1.0
	return sum, weight, nil
}
