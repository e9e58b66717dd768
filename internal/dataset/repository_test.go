// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/cityrec/internal/models"
)

func buildTestRepo(t *testing.T) *Repository {
	t.Helper()

	b := NewBuilder()
	businesses := []models.Business{
		{BusinessID: "b1", Name: "Slice", Stars: 4.5, Categories: []string{"Pizza", " Cafe"}},
		{BusinessID: "b2", Name: "Tap", Stars: 3.0, Categories: []string{"Bars", "Pizza"}},
		{BusinessID: "b3", Name: "Bean", Stars: 4.0, Categories: []string{"Cafe"}},
	}
	for _, biz := range businesses {
		if err := b.AddBusiness("westlake", biz); err != nil {
			t.Fatalf("AddBusiness(%s) error = %v", biz.BusinessID, err)
		}
	}
	if err := b.AddUser("westlake", models.User{UserID: "u1", Name: "Ann"}); err != nil {
		t.Fatalf("AddUser error = %v", err)
	}
	reviews := []models.Review{
		{ReviewID: "r1", UserID: "u1", BusinessID: "b1", Stars: 5},
		{ReviewID: "r2", UserID: "u2", BusinessID: "b1", Stars: 2},
		{ReviewID: "r3", UserID: "u1", BusinessID: "b2", Stars: 3},
		{ReviewID: "r4", UserID: "u1", BusinessID: "b3", Stars: 4},
	}
	for _, r := range reviews {
		if err := b.AddReview("westlake", r); err != nil {
			t.Fatalf("AddReview(%s) error = %v", r.ReviewID, err)
		}
	}
	b.AddTip("westlake", models.Tip{UserID: "u1", BusinessID: "b1", Text: "try the crust"})
	b.AddCheckin("westlake", models.Checkin{BusinessID: "b1", Dates: []string{"2017-01-01 10:00:00"}})
	b.AddCity("empty")

	repo, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return repo
}

func TestRepository_Cities(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	got := repo.Cities()
	want := []string{"empty", "westlake"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cities() = %v, want %v", got, want)
	}

	// The returned slice is a copy.
	got[0] = "mutated"
	if repo.Cities()[0] != "empty" {
		t.Error("Cities() exposed internal state")
	}
}

func TestRepository_Businesses(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	got := repo.Businesses("westlake")
	if len(got) != 3 {
		t.Fatalf("Businesses() len = %d, want 3", len(got))
	}
	for i, id := range []string{"b1", "b2", "b3"} {
		if got[i].BusinessID != id {
			t.Errorf("Businesses()[%d] = %s, want %s", i, got[i].BusinessID, id)
		}
		if got[i].City != "westlake" {
			t.Errorf("Businesses()[%d].City = %q, want westlake", i, got[i].City)
		}
	}

	if n := len(repo.Businesses("empty")); n != 0 {
		t.Errorf("Businesses(empty) len = %d, want 0", n)
	}
	if n := len(repo.Businesses("nowhere")); n != 0 {
		t.Errorf("Businesses(nowhere) len = %d, want 0", n)
	}
}

func TestRepository_ReviewsByUser(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	tests := []struct {
		name  string
		user  string
		limit int
		want  []string
	}{
		{"all", "u1", 0, []string{"r1", "r3", "r4"}},
		{"negative limit means all", "u1", -1, []string{"r1", "r3", "r4"}},
		{"capped", "u1", 2, []string{"r1", "r3"}},
		{"limit above count", "u2", 10, []string{"r2"}},
		{"unknown user", "nobody", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.ReviewsByUser("westlake", tt.user, tt.limit)
			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.ReviewID
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("ReviewsByUser(%s, %d) = %v, want %v", tt.user, tt.limit, ids, tt.want)
			}
		})
	}
}

func TestRepository_ReviewsByBusiness(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	got := repo.ReviewsByBusiness("westlake", "b1")
	if len(got) != 2 || got[0].ReviewID != "r1" || got[1].ReviewID != "r2" {
		t.Errorf("ReviewsByBusiness(b1) = %+v", got)
	}
	if len(repo.ReviewsByBusiness("westlake", "zzz")) != 0 {
		t.Error("ReviewsByBusiness(zzz) should be empty")
	}
}

func TestRepository_Lookups(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	if biz, err := repo.BusinessByID("westlake", "b2"); err != nil || biz.Name != "Tap" {
		t.Errorf("BusinessByID(b2) = %+v, %v", biz, err)
	}

	tests := []struct {
		name    string
		lookup  func() error
		wantErr error
	}{
		{"missing business", func() error { _, err := repo.BusinessByID("westlake", "nope"); return err }, ErrNotFound},
		{"missing user", func() error { _, err := repo.UserByID("westlake", "nope"); return err }, ErrNotFound},
		{"unknown city business", func() error { _, err := repo.BusinessByID("atlantis", "b1"); return err }, ErrUnknownCity},
		{"unknown city user", func() error { _, err := repo.UserByID("atlantis", "u1"); return err }, ErrUnknownCity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("error = %v, should match ErrNotFound", err)
			}
		})
	}
}

func TestRepository_ReviewersBecomeUsers(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	u, err := repo.UserByID("westlake", "u2")
	if err != nil {
		t.Fatalf("UserByID(u2) error = %v", err)
	}
	if u.City != "westlake" {
		t.Errorf("UserByID(u2).City = %q", u.City)
	}
	named, err := repo.UserByID("westlake", "u1")
	if err != nil || named.Name != "Ann" {
		t.Errorf("UserByID(u1) = %+v, %v", named, err)
	}
	if n := len(repo.Users("westlake")); n != 2 {
		t.Errorf("Users() len = %d, want 2", n)
	}
}

func TestRepository_CategoriesAndStats(t *testing.T) {
	t.Parallel()
	repo := buildTestRepo(t)

	want := []string{"Pizza", "Cafe", "Bars"}
	if got := repo.Categories("westlake"); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}

	stats, err := repo.Stats("westlake")
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Businesses != 3 || stats.Reviews != 4 || stats.Users != 2 || stats.Tips != 1 || stats.Checkins != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
	if _, err := repo.Stats("atlantis"); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("Stats(atlantis) error = %v", err)
	}
}

func TestBuilder_Errors(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if err := b.AddBusiness("c", models.Business{BusinessID: "x"}); err != nil {
		t.Fatalf("AddBusiness error = %v", err)
	}

	tests := []struct {
		name string
		err  error
	}{
		{"duplicate business", b.AddBusiness("c", models.Business{BusinessID: "x"})},
		{"empty business id", b.AddBusiness("c", models.Business{})},
		{"empty user id", b.AddUser("c", models.User{})},
		{"review without user", b.AddReview("c", models.Review{BusinessID: "x"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrInvalidState) {
				t.Errorf("error = %v, want ErrInvalidState", tt.err)
			}
		})
	}

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Build() error = %v, want ErrInvalidState", err)
	}
}
