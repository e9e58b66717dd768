// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

// Package database imports the city dataset through an in-memory DuckDB
// instance.
//
// DuckDB's read_json table function scans each newline-delimited JSON file
// with an explicit column schema, so missing keys become NULL and unknown
// keys are ignored. Rows are fed into a dataset.Builder in file order, which
// yields the same Repository as dataset.LoadDir for the same directory.
//
// The importer is selected with DATASET_FORMAT=duckdb. It trades start-up
// memory for DuckDB's parallel JSON parsing on large review files.
//
//	db, err := database.Open(database.Config{MaxMemory: "2GB"})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	repo, stats, err := db.ImportDir(ctx, "/data/yelp", dataset.LoadOptions{})
package database
