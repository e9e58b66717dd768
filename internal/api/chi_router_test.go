// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/cityrec/internal/config"
)

func TestRouter_RequestID(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	t.Run("generated when absent", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodGet, "/api/v1/health/live")
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header not set")
		}
	})

	t.Run("propagated from client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Errorf("X-Request-ID = %q, want abc-123", got)
		}
	})
}

func TestRouter_SecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec, _ := do(t, srv, http.MethodGet, "/api/v1/cities")

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP request")
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route error = %+v", env.Error)
	}

	rec, _ = do(t, srv, http.MethodPost, "/api/v1/cities")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	do(t, srv, http.MethodGet, "/api/v1/cities")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `api_requests_total{endpoint="/api/v1/cities"`) {
		t.Error("/metrics missing api_requests_total for /api/v1/cities")
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv, _ := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		if rec, _ := do(t, srv, http.MethodGet, "/api/v1/cities"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec, env := do(t, srv, http.MethodGet, "/api/v1/cities")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeRateLimited {
		t.Errorf("error = %+v, want %s", env.Error, ErrCodeRateLimited)
	}

	// Health checks have their own, larger budget.
	if rec, _ := do(t, srv, http.MethodGet, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_CORS(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://maps.example.com"}
	cfg.RateLimitDisabled = true
	srv, _ := newTestServer(t, cfg)

	tests := []struct {
		origin string
		want   string
	}{
		{"https://maps.example.com", "https://maps.example.com"},
		{"https://evil.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChiMiddlewareConfigFrom(t *testing.T) {
	tests := []struct {
		name         string
		sec          *config.SecurityConfig
		wantOrigins  int
		wantRequests int
		wantWindow   time.Duration
		wantDisabled bool
	}{
		{"nil keeps defaults", nil, 0, 100, time.Minute, false},
		{
			name:         "overrides",
			sec:          &config.SecurityConfig{CORSOrigins: []string{"*"}, RateLimitReqs: 5, RateLimitWindow: time.Second, RateLimitDisabled: true},
			wantOrigins:  1,
			wantRequests: 5,
			wantWindow:   time.Second,
			wantDisabled: true,
		},
		{
			name:         "zero values fall back",
			sec:          &config.SecurityConfig{},
			wantOrigins:  0,
			wantRequests: 100,
			wantWindow:   time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChiMiddlewareConfigFrom(tt.sec)
			if len(got.CORSAllowedOrigins) != tt.wantOrigins ||
				got.RateLimitRequests != tt.wantRequests ||
				got.RateLimitWindow != tt.wantWindow ||
				got.RateLimitDisabled != tt.wantDisabled {
				t.Errorf("got %+v", got)
			}
		})
	}
}
