// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cityrec/internal/cache"
	"github.com/tomtom215/cityrec/internal/dataset"
	"github.com/tomtom215/cityrec/internal/logging"
	"github.com/tomtom215/cityrec/internal/metrics"
	"github.com/tomtom215/cityrec/internal/models"
)

// Engine produces recommendation lists from a dataset.Store.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	store  dataset.Store

	sim       *Similarity
	predictor *Predictor
	matcher   *CategoryMatcher

	// Random source for city choice and shuffling (protected by rngMu)
	rng   *rand.Rand
	rngMu sync.Mutex

	requestCount atomic.Int64
	errorCount   atomic.Int64

	// Last cache snapshot published to metrics (protected by statsMu)
	lastPairs cache.Stats
	lastMeans cache.Stats
	statsMu   sync.Mutex
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand injects the random source used for city selection and shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// NewEngine creates a recommendation engine over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store dataset.Store, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("dataset store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	sim := NewSimilarity(store, cfg.Cache)
	predictor := NewPredictor(store, sim, cfg.Limits.MaxUserReviews)

	e := &Engine{
		config:    cfg.Clone(),
		logger:    logger.With().Str("component", "recommend").Logger(),
		store:     store,
		sim:       sim,
		predictor: predictor,
		matcher:   NewCategoryMatcher(store, predictor),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // math/rand is fine for recommendation shuffling
	}
	return e, nil
}

// Similarity exposes the engine's similarity scorer.
func (e *Engine) Similarity() *Similarity { return e.sim }

// Predictor exposes the engine's rating predictor.
func (e *Engine) Predictor() *Predictor { return e.predictor }

// Matcher exposes the engine's category matcher.
func (e *Engine) Matcher() *CategoryMatcher { return e.matcher }

// Recommend returns at most N recommendations for the request.
// Unknown user or business ids fail with dataset.ErrNotFound.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) ([]Recommendation, error) {
	start := time.Now()
	e.requestCount.Add(1)
	mode := req.Mode()

	req, err := e.prepareRequest(req)
	if err != nil {
		e.finish(mode, 0, start, err)
		return nil, err
	}
	logger := e.createRequestLogger(ctx, req, mode)
	logger.Debug().Msg("processing recommendation request")

	var picked []models.Business
	switch mode {
	case ModeUserBusiness:
		picked, err = e.recommendForUserAndBusiness(ctx, req)
	case ModeBusiness:
		picked, err = e.recommendForBusiness(ctx, req)
	case ModeUser:
		picked, err = e.recommendForUser(ctx, req)
	default:
		picked = topRated(e.store.Businesses(req.City), req.N)
	}
	if err != nil {
		e.finish(mode, 0, start, err)
		return nil, err
	}

	recs := make([]Recommendation, len(picked))
	for i := range picked {
		recs[i] = NewRecommendation(picked[i])
	}

	e.finish(mode, len(recs), start, nil)
	logger.Debug().
		Int("returned", len(recs)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")
	return recs, nil
}

// prepareRequest applies the count defaults and resolves the city.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, error) {
	if req.N < 0 {
		return req, fmt.Errorf("n must be non-negative, got %d: %w", req.N, ErrInvalidRequest)
	}
	if req.N == 0 {
		req.N = e.config.Limits.DefaultN
	}
	if req.N > e.config.Limits.MaxN {
		req.N = e.config.Limits.MaxN
	}

	if req.City == "" {
		city, err := e.randomCity()
		if err != nil {
			return req, err
		}
		req.City = city
	}
	return req, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(ctx context.Context, req Request, mode Mode) zerolog.Logger {
	lctx := e.logger.With().
		Str("mode", mode.String()).
		Str("city", req.City).
		Int("n", req.N)
	if req.UserID != "" {
		lctx = lctx.Str("user_id", req.UserID)
	}
	if req.BusinessID != "" {
		lctx = lctx.Str("business_id", req.BusinessID)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lctx = lctx.Str("request_id", id)
	}
	return lctx.Logger()
}

func (e *Engine) randomCity() (string, error) {
	cities := e.store.Cities()
	if len(cities) == 0 {
		return "", fmt.Errorf("no cities loaded: %w", dataset.ErrInvalidState)
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return cities[e.rng.Intn(len(cities))], nil
}

func (e *Engine) shuffle(items []models.Business) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// recommendForUserAndBusiness blends businesses similar to the reference,
// ranked by the user's predicted rating, with category matches for the user.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommendForUserAndBusiness(ctx context.Context, req Request) ([]models.Business, error) {
	ref, err := e.store.BusinessByID(req.City, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if _, err := e.store.UserByID(req.City, req.UserID); err != nil {
		return nil, err
	}

	businesses := e.store.Businesses(req.City)
	neighbors, err := e.neighborhood(ctx, req.City, ref, businesses)
	if err != nil {
		return nil, err
	}
	for i := range neighbors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score, err := e.predictor.Predict(req.City, req.UserID, neighbors[i].business.BusinessID)
		if err != nil {
			return nil, err
		}
		neighbors[i].score = score
	}
	sortByScore(neighbors)
	similar := businessesOf(neighbors[:min(len(neighbors), req.N/2)])

	exclude := make(map[string]struct{}, len(similar)+1)
	for i := range similar {
		exclude[similar[i].BusinessID] = struct{}{}
	}
	exclude[ref.BusinessID] = struct{}{}

	categorical, err := e.matcher.BestForUser(req.City, req.UserID, ref.Categories, exclude, req.N-len(similar))
	if err != nil {
		return nil, err
	}

	picked := e.blend(similar, categorical, businesses, ref.BusinessID, req.N)
	return picked, nil
}

// recommendForBusiness blends the most similar businesses with the
// businesses sharing the most categories with the reference.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommendForBusiness(ctx context.Context, req Request) ([]models.Business, error) {
	ref, err := e.store.BusinessByID(req.City, req.BusinessID)
	if err != nil {
		return nil, err
	}

	businesses := e.store.Businesses(req.City)
	neighbors, err := e.neighborhood(ctx, req.City, ref, businesses)
	if err != nil {
		return nil, err
	}
	sortByScore(neighbors)
	similar := businessesOf(neighbors[:min(len(neighbors), req.N/2)])

	ranked := e.matcher.Rank(req.City, ref.Categories)
	ranked = ranked[:min(len(ranked), req.N-len(similar)+1)]
	categorical := make([]models.Business, 0, len(ranked))
	for i := range ranked {
		if ranked[i].Business.BusinessID != ref.BusinessID {
			categorical = append(categorical, ranked[i].Business)
		}
	}

	picked := e.blend(similar, categorical, businesses, ref.BusinessID, req.N)
	return picked, nil
}

// recommendForUser ranks every business in the city by predicted rating.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommendForUser(ctx context.Context, req Request) ([]models.Business, error) {
	if _, err := e.store.UserByID(req.City, req.UserID); err != nil {
		return nil, err
	}

	businesses := e.store.Businesses(req.City)
	scored := make([]scoredBusiness, len(businesses))
	for i := range businesses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score, err := e.predictor.Predict(req.City, req.UserID, businesses[i].BusinessID)
		if err != nil {
			return nil, err
		}
		scored[i] = scoredBusiness{business: businesses[i], score: score}
	}
	sortByScore(scored)
	return businessesOf(scored[:min(len(scored), req.N)]), nil
}

// neighborhood returns the other businesses with positive similarity to ref,
// scored by that similarity, in dataset order.
func (e *Engine) neighborhood(ctx context.Context, city string, ref models.Business, businesses []models.Business) ([]scoredBusiness, error) {
	var out []scoredBusiness
	for i := range businesses {
		if businesses[i].BusinessID == ref.BusinessID {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := e.sim.Between(city, ref.BusinessID, businesses[i].BusinessID)
		if err != nil {
			return nil, err
		}
		if s > 0 {
			out = append(out, scoredBusiness{business: businesses[i], score: s})
		}
	}
	return out, nil
}

// blend joins the similar and categorical picks, pads the list with the
// city's top-rated businesses when it is short of n, drops duplicates and
// the reference, caps the list at n and shuffles it.
//
// The padding count is n − len(similar) − len(categorical), taken from the
// head of the star ranking before duplicates are removed.
func (e *Engine) blend(similar, categorical, businesses []models.Business, refID string, n int) []models.Business {
	combined := make([]models.Business, 0, n+1)
	combined = append(combined, similar...)
	combined = append(combined, categorical...)
	if shortfall := n - len(similar) - len(categorical); shortfall > 0 {
		combined = append(combined, topRated(businesses, shortfall)...)
	}

	seen := make(map[string]struct{}, len(combined)+1)
	seen[refID] = struct{}{}
	out := combined[:0]
	for _, b := range combined {
		if _, dup := seen[b.BusinessID]; dup {
			continue
		}
		seen[b.BusinessID] = struct{}{}
		out = append(out, b)
	}
	if len(out) > n {
		out = out[:n]
	}

	e.shuffle(out)
	return out
}

// topRated returns the first n businesses by star rating, descending.
// Ties keep dataset order.
func topRated(businesses []models.Business, n int) []models.Business {
	sorted := make([]models.Business, len(businesses))
	copy(sorted, businesses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	return sorted[:min(len(sorted), n)]
}

// finish records metrics for a completed request.
func (e *Engine) finish(mode Mode, results int, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		e.errorCount.Add(1)
		outcome = outcomeOf(err)
		e.logger.Debug().Err(err).Str("mode", mode.String()).Str("outcome", outcome).Msg("recommendation failed")
	}
	metrics.RecordRecommendation(mode.String(), outcome, results, time.Since(start))
	e.publishCacheStats()
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		return "not_found"
	case errors.Is(err, dataset.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// publishCacheStats pushes memo cache deltas since the previous call to metrics.
func (e *Engine) publishCacheStats() {
	pairs, means := e.sim.CacheStats()

	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	metrics.RecordCacheStats("similarity", pairs.Hits-e.lastPairs.Hits, pairs.Misses-e.lastPairs.Misses, pairs.Size)
	metrics.RecordCacheStats("user_mean", means.Hits-e.lastMeans.Hits, means.Misses-e.lastMeans.Misses, means.Size)
	e.lastPairs, e.lastMeans = pairs, means
}

// EngineStats summarizes engine activity since construction.
type EngineStats struct {
	Requests        int64       `json:"requests"`
	Errors          int64       `json:"errors"`
	SimilarityCache cache.Stats `json:"similarity_cache"`
	UserMeanCache   cache.Stats `json:"user_mean_cache"`
}

// Stats returns request counters and memo cache statistics.
func (e *Engine) Stats() EngineStats {
	pairs, means := e.sim.CacheStats()
	return EngineStats{
		Requests:        e.requestCount.Load(),
		Errors:          e.errorCount.Load(),
		SimilarityCache: pairs,
		UserMeanCache:   means,
	}
}

// Warm fills the user-mean memo for every reviewer of every loaded city and
// returns how many means it computed. With caching disabled it does nothing.
func (e *Engine) Warm(ctx context.Context) (int, error) {
	if !e.config.Cache.Enabled {
		return 0, nil
	}

	warmed := 0
	for _, city := range e.store.Cities() {
		seen := make(map[string]struct{})
		reviews := e.store.Reviews(city)
		for i := range reviews {
			uid := reviews[i].UserID
			if _, ok := seen[uid]; ok {
				continue
			}
			seen[uid] = struct{}{}
			if err := ctx.Err(); err != nil {
				return warmed, err
			}
			if _, err := e.sim.UserMean(city, uid); err != nil {
				return warmed, fmt.Errorf("warm %q/%q: %w", city, uid, err)
			}
			warmed++
		}
	}
	e.publishCacheStats()
	return warmed, nil
}
