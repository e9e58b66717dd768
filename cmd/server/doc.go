// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package main is the entry point for the Cityrec server.

Cityrec loads a per-city business review dataset into memory and serves
business recommendations over HTTP.

Startup order:

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Dataset: root/<city>/{business,review,user,tip,checkin}.json, read either
    by the streaming JSON loader or through DuckDB's read_json
 4. Engine: recommend.Engine over the loaded repository
 5. Supervisor tree: engine housekeeping and the chi HTTP server

Dataset layout:

	data/
	├── springfield/
	│   ├── business.json   (required)
	│   ├── review.json     (required)
	│   ├── user.json
	│   ├── tip.json
	│   └── checkin.json
	└── shelbyville/
	    └── ...

Each file holds one JSON object per line.

Example:

	DATASET_PATH=/srv/yelp DATASET_FORMAT=duckdb LOG_FORMAT=console ./cityrec

	curl 'localhost:8080/api/v1/recommendations?city=springfield&user_id=u1&n=5'

SIGINT and SIGTERM cancel the supervisor tree, which drains the HTTP server
within HTTP_SHUTDOWN_TIMEOUT.
*/
package main
