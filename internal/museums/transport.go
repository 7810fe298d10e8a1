// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package museums

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/museadev/musea/internal/cache"
	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/metrics"
)

// maxResponseBytes caps upstream response bodies. The largest legitimate
// museum responses (Met search ID lists) stay well under this.
const maxResponseBytes = 16 << 20

// transport is the shared per-museum HTTP plumbing: response cache in front,
// then a client-side rate limit, then a circuit breaker around the actual
// request.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. Tests should stub the HTTP
// server, not the breaker.
type transport struct {
	museum  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
	cache   *cache.Cache
	logger  zerolog.Logger
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newTransport(museum string, mc *config.MuseumConfig, timeout time.Duration, store *cache.Cache, logger zerolog.Logger) *transport {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rps := mc.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	log := logger.With().Str("museum", museum).Logger()

	metrics.CircuitBreakerState.WithLabelValues(museum).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        museum,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		// Opens at >= 60% failures with at least 10 requests observed.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			log.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &transport{
		museum:  museum,
		baseURL: mc.BaseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cb:      cb,
		cache:   store,
		logger:  log,
	}
}

// getJSON performs a cached, rate-limited, breaker-protected GET and decodes
// the JSON response into out.
func (t *transport) getJSON(ctx context.Context, path string, params url.Values, cachePrefix string, out any) error {
	fullURL := t.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var key string
	if t.cache != nil {
		key = cache.Key(cachePrefix, t.baseURL+path, flattenParams(params))
		if raw, ok := t.cache.Get(key); ok {
			metrics.CacheHits.Inc()
			return json.Unmarshal(raw, out)
		}
		metrics.CacheMisses.Inc()
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", t.museum, err)
	}

	start := time.Now()
	raw, err := t.cb.Execute(func() ([]byte, error) {
		return t.doGet(ctx, fullURL)
	})
	metrics.RecordMuseumRequest(t.museum, time.Since(start), err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.MuseumRequestsTotal.WithLabelValues(t.museum, "rejected").Inc()
			t.logger.Warn().Err(err).Msg("request rejected by circuit breaker")
		}
		return fmt.Errorf("%s request failed: %w", t.museum, err)
	}

	if t.cache != nil {
		if cerr := t.cache.Set(key, raw); cerr != nil {
			t.logger.Debug().Err(cerr).Msg("failed to cache upstream response")
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", t.museum, err)
	}
	return nil
}

func (t *transport) doGet(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "musea/1.0")

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return raw, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
