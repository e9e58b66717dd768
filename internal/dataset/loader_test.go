// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeCity(t *testing.T, root, city string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, city)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeCity(t, root, "westlake", map[string]string{
		BusinessFile: `{"business_id":"b1","name":"Slice","address":"1 Main St","city":"Westlake","stars":4.5,"categories":"Pizza, Cafe"}
{"business_id":"b2","name":"Tap","address":"2 Main St","city":"Westlake","stars":3.0,"categories":null}
`,
		UserFile: `{"user_id":"u1","name":"Ann"}
`,
		ReviewFile: `{"review_id":"r1","user_id":"u1","business_id":"b1","stars":5}
{"user_id":"u2","business_id":"b2","stars":2}
`,
		TipFile:     `{"user_id":"u1","business_id":"b1","text":"crust","date":"2017-01-01"}`,
		CheckinFile: `{"business_id":"b1","date":"2016-04-26 19:49:16, 2016-08-30 18:36:57"}`,
	})
	writeCity(t, root, "sun city", map[string]string{
		BusinessFile: `{"business_id":"s1","name":"Sun Diner","stars":4.0,"categories":"Diners"}`,
	})

	repo, stats, err := LoadDir(context.Background(), root, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	if got, want := repo.Cities(), []string{"sun city", "westlake"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cities() = %v, want %v", got, want)
	}
	if stats.Cities != 2 || stats.Businesses != 3 || stats.Reviews != 2 || stats.Users != 1 || stats.Tips != 1 || stats.Checkins != 1 {
		t.Errorf("stats = %+v", stats)
	}

	b1, err := repo.BusinessByID("westlake", "b1")
	if err != nil {
		t.Fatalf("BusinessByID(b1) error = %v", err)
	}
	if !reflect.DeepEqual(b1.Categories, []string{"Pizza", "Cafe"}) {
		t.Errorf("b1.Categories = %v", b1.Categories)
	}
	if b1.City != "Westlake" || b1.Address != "1 Main St" {
		t.Errorf("b1 = %+v", b1)
	}

	b2, _ := repo.BusinessByID("westlake", "b2")
	if len(b2.Categories) != 0 {
		t.Errorf("b2.Categories = %v, want none", b2.Categories)
	}

	reviews := repo.ReviewsByUser("westlake", "u2", 0)
	if len(reviews) != 1 || reviews[0].ReviewID == "" {
		t.Fatalf("ReviewsByUser(u2) = %+v", reviews)
	}

	// Generated ids are stable across loads.
	again, _, err := LoadDir(context.Background(), root, LoadOptions{Cities: []string{"westlake"}})
	if err != nil {
		t.Fatalf("second LoadDir() error = %v", err)
	}
	if id := again.ReviewsByUser("westlake", "u2", 0)[0].ReviewID; id != reviews[0].ReviewID {
		t.Errorf("generated review id changed: %s vs %s", id, reviews[0].ReviewID)
	}
	if len(again.Cities()) != 1 {
		t.Errorf("filtered Cities() = %v", again.Cities())
	}
}

func TestLoadDir_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, root string)
		opts  LoadOptions
	}{
		{
			name:  "empty root",
			setup: func(t *testing.T, root string) {},
		},
		{
			name: "missing business file",
			setup: func(t *testing.T, root string) {
				writeCity(t, root, "a", map[string]string{ReviewFile: ""})
			},
		},
		{
			name: "malformed json",
			setup: func(t *testing.T, root string) {
				writeCity(t, root, "a", map[string]string{BusinessFile: `{"business_id":`})
			},
		},
		{
			name: "unknown city filter",
			setup: func(t *testing.T, root string) {
				writeCity(t, root, "a", map[string]string{BusinessFile: ""})
			},
			opts: LoadOptions{Cities: []string{"b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)
			if _, _, err := LoadDir(context.Background(), root, tt.opts); err == nil {
				t.Error("LoadDir() expected error")
			}
		})
	}
}

func TestLoadDir_Canceled(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeCity(t, root, "a", map[string]string{BusinessFile: ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := LoadDir(ctx, root, LoadOptions{}); err == nil {
		t.Error("LoadDir() with canceled context expected error")
	}
}
