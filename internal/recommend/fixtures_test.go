// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/models"
)

// The westlake fixture. User means: uA 4, uB 4, uT 3.
//
//	sim(ref, s1) = 0.5   sim(ref, s2) = 0.5   sim(s1, s2) = 0.5
//	sim(ref, t1) = -1    sim(ref, t2) = -1.5  sim(s1, c1) = -0.5
//
// Predicted ratings for uT: t1 5.0, ref 4.667, c2 4.5, s1 4.0, s2 4.0,
// c1 2.75, t2 1.0.
var westlakeBusinesses = []models.Business{
	{BusinessID: "ref", Name: "Reference Pizza", Address: "1 Lake Rd", Stars: 3.0, Categories: []string{"Pizza", "Bars"}},
	{BusinessID: "s1", Name: "Similar One", Address: "2 Lake Rd", Stars: 4.0, Categories: []string{"Cafe"}},
	{BusinessID: "s2", Name: "Similar Two", Address: "3 Lake Rd", Stars: 2.0, Categories: []string{"Diner"}},
	{BusinessID: "c1", Name: "Category One", Address: "4 Lake Rd", Stars: 3.5, Categories: []string{"Pizza"}},
	{BusinessID: "c2", Name: "Category Two", Address: "5 Lake Rd", Stars: 4.5, Categories: []string{"Bars", "Pizza"}},
	{BusinessID: "t1", Name: "Top One", Address: "6 Lake Rd", Stars: 5.0, Categories: []string{"Museum"}},
	{BusinessID: "t2", Name: "Bottom", Address: "7 Lake Rd", Stars: 1.0, Categories: []string{"Museum"}},
}

var westlakeReviews = []models.Review{
	{UserID: "uA", BusinessID: "ref", Stars: 5},
	{UserID: "uA", BusinessID: "s1", Stars: 5},
	{UserID: "uA", BusinessID: "s2", Stars: 5},
	{UserID: "uA", BusinessID: "t2", Stars: 1},
	{UserID: "uB", BusinessID: "ref", Stars: 5},
	{UserID: "uB", BusinessID: "s2", Stars: 5},
	{UserID: "uB", BusinessID: "t1", Stars: 2},
	{UserID: "uT", BusinessID: "s1", Stars: 4},
	{UserID: "uT", BusinessID: "c1", Stars: 2},
}

var springfieldBusinesses = []models.Business{
	{BusinessID: "sp1", Name: "Five", Address: "742 Evergreen Terrace", Stars: 5.0},
	{BusinessID: "sp2", Name: "Three", Address: "1 Main St", Stars: 3.0},
	{BusinessID: "sp3", Name: "Four", Address: "2 Main St", Stars: 4.0},
}

// newTestRepo builds westlake, springfield and an empty city "ghost town"
// holding a single user without reviews.
func newTestRepo(t *testing.T) *dataset.Repository {
	t.Helper()
	b := dataset.NewBuilder()

	add := func(city string, businesses []models.Business) {
		for _, biz := range businesses {
			if err := b.AddBusiness(city, biz); err != nil {
				t.Fatalf("AddBusiness(%s) error = %v", biz.BusinessID, err)
			}
		}
	}
	add("westlake", westlakeBusinesses)
	add("springfield", springfieldBusinesses)

	for i, r := range westlakeReviews {
		r.ReviewID = "wr" + strconv.Itoa(i)
		if err := b.AddReview("westlake", r); err != nil {
			t.Fatalf("AddReview error = %v", err)
		}
	}
	if err := b.AddUser("westlake", models.User{UserID: "uNew", Name: "New"}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddUser("ghost town", models.User{UserID: "g1", Name: "Ghost"}); err != nil {
		t.Fatal(err)
	}

	repo, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return repo
}

func newTestEngine(t *testing.T, store dataset.Store, seed int64) *Engine {
	t.Helper()
	engine, err := NewEngine(store, DefaultConfig(), zerolog.Nop(), WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// hiddenReviewsStore hides one user's reviews from ReviewsByUser, producing a
// reviewer whose mean rating is undefined.
type hiddenReviewsStore struct {
	dataset.Store
	hidden string
}

func (s hiddenReviewsStore) ReviewsByUser(city, userID string, limit int) []models.Review {
	if userID == s.hidden {
		return nil
	}
	return s.Store.ReviewsByUser(city, userID, limit)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ids(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = recs[i].BusinessID
	}
	return out
}

func idSet(recs []Recommendation) map[string]bool {
	out := make(map[string]bool, len(recs))
	for i := range recs {
		out[recs[i].BusinessID] = true
	}
	return out
}
