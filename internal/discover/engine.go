// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package discover

import (
	"context"
	"crypto/md5" //nolint:gosec // seeds a presentation shuffle, not a security boundary
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/metrics"
	"github.com/museadev/musea/internal/models"
)

// Note: This package depends only on the leaf packages models and metrics.
// The Source interface allows integration with the catalog and museum layers
// without creating circular imports.

// Source is the painting search capability the engine aggregates over. It is
// implemented by the catalog store (and, behind it, the museum clients).
type Source interface {
	// Search performs a best-effort text search. No ordering guarantee is
	// required; the engine imposes its own deterministic ordering.
	Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error)

	// Random returns one random painting, or nil when the store is empty.
	Random(ctx context.Context) (*models.Painting, error)
}

// Config controls aggregation fan-out behavior.
type Config struct {
	// TermLimit is the per-term search limit. It must be large enough to
	// avoid truncating any single term's contribution.
	TermLimit int

	// Workers bounds concurrent per-term searches within one aggregation.
	Workers int

	// TermTimeout caps each individual term search. A timed-out term
	// contributes nothing; it never stalls the aggregation.
	TermTimeout time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		TermLimit:   200,
		Workers:     6,
		TermTimeout: 15 * time.Second,
	}
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	if c.TermLimit < 1 {
		return fmt.Errorf("term limit must be positive, got %d", c.TermLimit)
	}
	if c.Workers < 1 || c.Workers > 64 {
		return fmt.Errorf("workers must be in [1,64], got %d", c.Workers)
	}
	if c.TermTimeout <= 0 {
		return fmt.Errorf("term timeout must be positive, got %s", c.TermTimeout)
	}
	return nil
}

// AggregatedResult is one page of a category aggregation.
type AggregatedResult struct {
	Paintings []models.Painting `json:"paintings"`
	// Total is the post-filter, pre-pagination count of the full ordering.
	Total    int       `json:"total"`
	Category *Category `json:"category"`
}

// Engine aggregates painting searches across a category's terms, producing a
// stable, deterministically shuffled ordering suitable for pagination. It is
// stateless between calls and safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	source Source

	aggregations    atomic.Int64
	termFailures    atomic.Int64
	filterFallbacks atomic.Int64
}

// NewEngine creates an aggregation engine over the given painting source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, source Source, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("source is required")
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "discover").Logger(),
		source: source,
	}, nil
}

// FetchByCategory aggregates paintings for one category page.
//
// The full ordering is deterministic for a fixed category and fixed source
// contents: per-term results are merged in term order, deduplicated by
// (museum, external_id) with first-seen wins, era-filtered where applicable,
// then shuffled by a PRNG seeded from the category key. Pagination slices
// that single stable ordering, so consecutive pages never overlap or skip.
//
// An unknown kind or key yields an empty result with a nil error; it is a
// normal not-found outcome.
func (e *Engine) FetchByCategory(ctx context.Context, kind CategoryKind, key string, page, limit int) (AggregatedResult, error) {
	e.aggregations.Add(1)

	cat, ok := Lookup(kind, key)
	if !ok {
		return AggregatedResult{Paintings: []models.Painting{}}, nil
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	terms := queryTerms(cat)
	perTerm := e.searchTerms(ctx, terms)

	// Merge in term order so the dedup pass is deterministic regardless of
	// which goroutine finished first.
	seen := make(map[string]struct{})
	var merged []models.Painting
	for _, batch := range perTerm {
		for _, p := range batch {
			k := p.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, p)
		}
	}

	if cat.Kind == KindEra && cat.Years != "" {
		filtered := merged[:0:0]
		for _, p := range merged {
			if InEra(p.DateDisplay, cat.Years) {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 && len(merged) > 0 {
			// An empty shelf is worse than an unfiltered one.
			e.filterFallbacks.Add(1)
			metrics.AggregationFilterFallbacks.Inc()
			e.logger.Warn().
				Str("category", cat.Key).
				Str("years", cat.Years).
				Int("candidates", len(merged)).
				Msg("era filter removed all candidates, serving unfiltered")
		} else {
			merged = filtered
		}
	}

	shuffleDeterministic(merged, cat.Key)

	total := len(merged)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageSlice := merged[start:end]
	if pageSlice == nil {
		pageSlice = []models.Painting{}
	}

	e.logger.Debug().
		Str("category", cat.Key).
		Int("terms", len(terms)).
		Int("total", total).
		Int("page", page).
		Int("returned", len(pageSlice)).
		Msg("category aggregation complete")

	return AggregatedResult{Paintings: pageSlice, Total: total, Category: &cat}, nil
}

// FetchSurprise returns one random painting from the source, or nil when the
// store is empty.
func (e *Engine) FetchSurprise(ctx context.Context) (*models.Painting, error) {
	return e.source.Random(ctx)
}

// FetchArtistWorks searches for an artist's paintings. The source's text
// search may return loosely related matches, so results are filtered to those
// whose artist field case-insensitively contains the requested name, then
// truncated to limit.
func (e *Engine) FetchArtistWorks(ctx context.Context, artist string, limit int) ([]models.Painting, error) {
	if limit < 1 {
		limit = 1
	}

	res, err := e.source.Search(ctx, artist, 1, e.config.TermLimit)
	if err != nil {
		return nil, fmt.Errorf("artist search %q: %w", artist, err)
	}

	needle := strings.ToLower(artist)
	works := make([]models.Painting, 0, limit)
	for _, p := range res.Paintings {
		if !strings.Contains(strings.ToLower(p.Artist), needle) {
			continue
		}
		works = append(works, p)
		if len(works) == limit {
			break
		}
	}
	return works, nil
}

// Stats reports engine counters for the stats endpoint.
func (e *Engine) Stats() (aggregations, termFailures, filterFallbacks int64) {
	return e.aggregations.Load(), e.termFailures.Load(), e.filterFallbacks.Load()
}

// queryTerms builds the ordered union of a category's artists and search
// terms. Order is significant: it fixes the first-seen order used by dedup.
func queryTerms(cat Category) []string {
	seen := make(map[string]struct{}, len(cat.Artists)+len(cat.SearchTerms))
	terms := make([]string, 0, len(cat.Artists)+len(cat.SearchTerms))
	for _, t := range append(append([]string{}, cat.Artists...), cat.SearchTerms...) {
		lower := strings.ToLower(t)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		terms = append(terms, t)
	}
	return terms
}

// searchTerms fans the per-term searches out over a bounded worker pool.
// Results come back indexed by term position, never by completion order.
// A failed or timed-out term contributes an empty batch.
func (e *Engine) searchTerms(ctx context.Context, terms []string) [][]models.Painting {
	results := make([][]models.Painting, len(terms))

	sem := make(chan struct{}, e.config.Workers)
	var wg sync.WaitGroup

	for i, term := range terms {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			termCtx, cancel := context.WithTimeout(ctx, e.config.TermTimeout)
			defer cancel()

			res, err := e.source.Search(termCtx, term, 1, e.config.TermLimit)
			if err != nil {
				e.termFailures.Add(1)
				e.logger.Debug().
					Err(err).
					Str("term", term).
					Msg("term search failed, contributing no results")
				return
			}
			results[i] = res.Paintings
		}(i, term)
	}

	wg.Wait()
	return results
}

// shuffleDeterministic permutes paintings with a PRNG seeded from the
// category key, so the full ordering is stable across calls and pages while
// differing between categories. The generator is local to the call.
func shuffleDeterministic(paintings []models.Painting, categoryKey string) {
	rng := rand.New(rand.NewSource(seedForKey(categoryKey))) //nolint:gosec // presentation shuffle
	rng.Shuffle(len(paintings), func(i, j int) {
		paintings[i], paintings[j] = paintings[j], paintings[i]
	})
}

// seedForKey derives a stable seed from the first 8 hex digits of the key's
// MD5 digest.
func seedForKey(key string) int64 {
	sum := md5.Sum([]byte(key)) //nolint:gosec // not used for integrity
	digest := hex.EncodeToString(sum[:])
	seed, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		// Unreachable: an MD5 digest always hex-encodes cleanly.
		return 0
	}
	return int64(seed)
}
