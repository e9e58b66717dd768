// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cityrec/internal/logging"
)

// Dataset file names inside each city directory.
const (
	BusinessFile = "business.json"
	ReviewFile   = "review.json"
	UserFile     = "user.json"
	TipFile      = "tip.json"
	CheckinFile  = "checkin.json"
)

// LoadOptions controls which part of a dataset directory is loaded.
type LoadOptions struct {
	// Cities restricts loading to these city directories. Empty loads all.
	Cities []string
}

// LoadStats reports how many records a load produced.
type LoadStats struct {
	Cities     int
	Businesses int
	Reviews    int
	Users      int
	Tips       int
	Checkins   int
	Duration   time.Duration
}

// LoadDir reads root/<city>/*.json into a Repository. Every city directory
// must contain business.json; the other files are optional.
func LoadDir(ctx context.Context, root string, opts LoadOptions) (*Repository, LoadStats, error) {
	start := time.Now()
	var stats LoadStats

	cities, err := CityDirs(root, opts.Cities)
	if err != nil {
		return nil, stats, err
	}

	b := NewBuilder()
	for _, city := range cities {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		cs, err := loadCity(b, filepath.Join(root, city), city)
		if err != nil {
			return nil, stats, fmt.Errorf("load city %q: %w", city, err)
		}
		stats.add(cs)
		logging.Debug().
			Str("city", city).
			Int("businesses", cs.Businesses).
			Int("reviews", cs.Reviews).
			Int("users", cs.Users).
			Msg("Loaded city dataset")
	}

	repo, err := b.Build()
	if err != nil {
		return nil, stats, err
	}
	stats.Cities = len(cities)
	stats.Duration = time.Since(start)
	return repo, stats, nil
}

func (s *LoadStats) add(o LoadStats) {
	s.Businesses += o.Businesses
	s.Reviews += o.Reviews
	s.Users += o.Users
	s.Tips += o.Tips
	s.Checkins += o.Checkins
}

// CityDirs lists the city directories under root. A non-empty only list is
// checked for existence and returned sorted.
func CityDirs(root string, only []string) ([]string, error) {
	if len(only) > 0 {
		for _, city := range only {
			info, err := os.Stat(filepath.Join(root, city))
			if err != nil {
				return nil, fmt.Errorf("city %q: %w", city, err)
			}
			if !info.IsDir() {
				return nil, fmt.Errorf("city %q is not a directory", city)
			}
		}
		out := append([]string(nil), only...)
		sort.Strings(out)
		return out, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no city directories under %s", root)
	}
	return out, nil
}

func loadCity(b *Builder, dir, city string) (LoadStats, error) {
	var stats LoadStats
	b.AddCity(city)

	err := decodeFile(filepath.Join(dir, BusinessFile), true, func(_ int, dec *json.Decoder) error {
		var rec BusinessRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		stats.Businesses++
		return b.AddBusiness(city, rec.ToModel(city))
	})
	if err != nil {
		return stats, err
	}

	// Users before reviews so named users win over reviewer placeholders.
	err = decodeFile(filepath.Join(dir, UserFile), false, func(_ int, dec *json.Decoder) error {
		var rec UserRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		stats.Users++
		return b.AddUser(city, rec.ToModel(city))
	})
	if err != nil {
		return stats, err
	}

	err = decodeFile(filepath.Join(dir, ReviewFile), false, func(line int, dec *json.Decoder) error {
		var rec ReviewRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		stats.Reviews++
		return b.AddReview(city, rec.ToModel(city, line))
	})
	if err != nil {
		return stats, err
	}

	err = decodeFile(filepath.Join(dir, TipFile), false, func(_ int, dec *json.Decoder) error {
		var rec TipRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		stats.Tips++
		b.AddTip(city, rec.ToModel(city))
		return nil
	})
	if err != nil {
		return stats, err
	}

	err = decodeFile(filepath.Join(dir, CheckinFile), false, func(_ int, dec *json.Decoder) error {
		var rec CheckinRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		stats.Checkins++
		b.AddCheckin(city, rec.ToModel(city))
		return nil
	})
	return stats, err
}

// decodeFile streams newline-delimited JSON values from path, calling fn once
// per value with its 1-based ordinal.
func decodeFile(path string, required bool, fn func(int, *json.Decoder) error) error {
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("file", path).Msg("Failed to close dataset file")
		}
	}()
	return decodeStream(f, filepath.Base(path), fn)
}

func decodeStream(r io.Reader, name string, fn func(int, *json.Decoder) error) error {
	dec := json.NewDecoder(r)
	for line := 1; dec.More(); line++ {
		if err := fn(line, dec); err != nil {
			return fmt.Errorf("%s record %d: %w", name, line, err)
		}
	}
	return nil
}
