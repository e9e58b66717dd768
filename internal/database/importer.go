// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/logging"
	"github.com/tomtom215/cityrec/internal/metrics"
)

// jsonSource describes how one dataset file is scanned.
type jsonSource struct {
	file    string
	table   string // metrics label
	columns string // read_json column schema
	selects string // NULL-free projection in scan order
}

var (
	businessSource = jsonSource{
		file:    dataset.BusinessFile,
		table:   "business",
		columns: `{business_id: 'VARCHAR', name: 'VARCHAR', address: 'VARCHAR', city: 'VARCHAR', stars: 'DOUBLE', categories: 'VARCHAR'}`,
		selects: `COALESCE(business_id, ''), COALESCE(name, ''), COALESCE(address, ''), COALESCE(city, ''), COALESCE(stars, 0), COALESCE(categories, '')`,
	}
	userSource = jsonSource{
		file:    dataset.UserFile,
		table:   "user",
		columns: `{user_id: 'VARCHAR', name: 'VARCHAR'}`,
		selects: `COALESCE(user_id, ''), COALESCE(name, '')`,
	}
	reviewSource = jsonSource{
		file:    dataset.ReviewFile,
		table:   "review",
		columns: `{review_id: 'VARCHAR', user_id: 'VARCHAR', business_id: 'VARCHAR', stars: 'DOUBLE'}`,
		selects: `COALESCE(review_id, ''), COALESCE(user_id, ''), COALESCE(business_id, ''), COALESCE(stars, 0)`,
	}
	tipSource = jsonSource{
		file:    dataset.TipFile,
		table:   "tip",
		columns: `{user_id: 'VARCHAR', business_id: 'VARCHAR', text: 'VARCHAR', date: 'VARCHAR'}`,
		selects: `COALESCE(user_id, ''), COALESCE(business_id, ''), COALESCE(text, ''), COALESCE(date, '')`,
	}
	checkinSource = jsonSource{
		file:    dataset.CheckinFile,
		table:   "checkin",
		columns: `{business_id: 'VARCHAR', date: 'VARCHAR'}`,
		selects: `COALESCE(business_id, ''), COALESCE(date, '')`,
	}
)

// ImportDir reads root/<city>/*.json through DuckDB into a Repository.
// Layout, required files and record mapping match dataset.LoadDir.
func (db *DB) ImportDir(ctx context.Context, root string, opts dataset.LoadOptions) (*dataset.Repository, dataset.LoadStats, error) {
	start := time.Now()
	var stats dataset.LoadStats

	cities, err := dataset.CityDirs(root, opts.Cities)
	if err != nil {
		return nil, stats, err
	}

	b := dataset.NewBuilder()
	for _, city := range cities {
		cs, err := db.importCity(ctx, b, filepath.Join(root, city), city)
		if err != nil {
			return nil, stats, fmt.Errorf("import city %q: %w", city, err)
		}
		stats.Businesses += cs.Businesses
		stats.Reviews += cs.Reviews
		stats.Users += cs.Users
		stats.Tips += cs.Tips
		stats.Checkins += cs.Checkins
		logging.Debug().
			Str("city", city).
			Int("businesses", cs.Businesses).
			Int("reviews", cs.Reviews).
			Int("users", cs.Users).
			Msg("Imported city dataset via DuckDB")
	}

	repo, err := b.Build()
	if err != nil {
		return nil, stats, err
	}
	stats.Cities = len(cities)
	stats.Duration = time.Since(start)
	return repo, stats, nil
}

func (db *DB) importCity(ctx context.Context, b *dataset.Builder, dir, city string) (dataset.LoadStats, error) {
	var stats dataset.LoadStats
	b.AddCity(city)

	var err error
	stats.Businesses, err = db.scan(ctx, dir, businessSource, true, func(rows *sql.Rows, _ int) error {
		var rec dataset.BusinessRecord
		if err := rows.Scan(&rec.BusinessID, &rec.Name, &rec.Address, &rec.City, &rec.Stars, &rec.Categories); err != nil {
			return err
		}
		return b.AddBusiness(city, rec.ToModel(city))
	})
	if err != nil {
		return stats, err
	}

	// Users before reviews so named users win over reviewer placeholders.
	stats.Users, err = db.scan(ctx, dir, userSource, false, func(rows *sql.Rows, _ int) error {
		var rec dataset.UserRecord
		if err := rows.Scan(&rec.UserID, &rec.Name); err != nil {
			return err
		}
		return b.AddUser(city, rec.ToModel(city))
	})
	if err != nil {
		return stats, err
	}

	stats.Reviews, err = db.scan(ctx, dir, reviewSource, false, func(rows *sql.Rows, line int) error {
		var rec dataset.ReviewRecord
		if err := rows.Scan(&rec.ReviewID, &rec.UserID, &rec.BusinessID, &rec.Stars); err != nil {
			return err
		}
		return b.AddReview(city, rec.ToModel(city, line))
	})
	if err != nil {
		return stats, err
	}

	stats.Tips, err = db.scan(ctx, dir, tipSource, false, func(rows *sql.Rows, _ int) error {
		var rec dataset.TipRecord
		if err := rows.Scan(&rec.UserID, &rec.BusinessID, &rec.Text, &rec.Date); err != nil {
			return err
		}
		b.AddTip(city, rec.ToModel(city))
		return nil
	})
	if err != nil {
		return stats, err
	}

	stats.Checkins, err = db.scan(ctx, dir, checkinSource, false, func(rows *sql.Rows, _ int) error {
		var rec dataset.CheckinRecord
		if err := rows.Scan(&rec.BusinessID, &rec.Date); err != nil {
			return err
		}
		b.AddCheckin(city, rec.ToModel(city))
		return nil
	})
	return stats, err
}

// scan runs src over dir and calls fn for every row with its 1-based ordinal.
// A missing optional file yields zero rows.
func (db *DB) scan(ctx context.Context, dir string, src jsonSource, required bool, fn func(*sql.Rows, int) error) (n int, err error) {
	path := filepath.Join(dir, src.file)
	if _, statErr := os.Stat(path); statErr != nil {
		if !required && errors.Is(statErr, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open %s: %w", src.file, statErr)
	}

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("import", src.table, time.Since(start), err)
	}()

	//nolint:gosec // G201: the path is quoted as a SQL string literal
	q := fmt.Sprintf("SELECT %s FROM read_json(%s, format = 'newline_delimited', columns = %s)",
		src.selects, quoteLiteral(path), src.columns)

	rows, err := db.conn.QueryContext(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", src.file, err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		n++
		if err := fn(rows, n); err != nil {
			return n, fmt.Errorf("%s record %d: %w", src.file, n, err)
		}
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("scan %s: %w", src.file, err)
	}
	return n, nil
}

// quoteLiteral renders s as a single-quoted SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
