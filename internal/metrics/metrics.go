// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Museum API request outcomes and circuit breaker state
// - Upstream response cache efficiency
// - Harvest pipeline progress
// - Aggregation engine behavior

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Museum API Metrics
	MuseumRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_requests_total",
			Help: "Total number of upstream museum API requests",
		},
		[]string{"museum", "outcome"}, // outcome: "success", "error", "rejected"
	)

	MuseumRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "museum_request_duration_seconds",
			Help:    "Upstream museum API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"museum"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "museum_circuit_breaker_state",
			Help: "Circuit breaker state per museum (0=closed, 1=half-open, 2=open)",
		},
		[]string{"museum"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions",
		},
		[]string{"museum", "from", "to"},
	)

	// Response Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total number of upstream response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total number of upstream response cache misses",
		},
	)

	// Harvest Pipeline Metrics
	HarvestRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "harvest_runs_total",
			Help: "Total number of harvest cycles started",
		},
	)

	HarvestPaintingsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harvest_paintings_stored_total",
			Help: "Total paintings written to the catalog by the harvester",
		},
		[]string{"museum"},
	)

	HarvestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harvest_errors_total",
			Help: "Total harvest task failures",
		},
		[]string{"museum"},
	)

	HarvestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "harvest_cycle_duration_seconds",
			Help:    "Duration of full harvest cycles in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	// Aggregation Engine Metrics
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Duration of category aggregations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	AggregationFilterFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_filter_fallbacks_total",
			Help: "Times era filtering zeroed all candidates and the unfiltered list was served",
		},
	)

	SpellingSuggestions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spelling_suggestions_total",
			Help: "Spelling suggestion attempts by outcome",
		},
		[]string{"outcome"}, // "suggested", "none"
	)
)

// RecordAPIRequest records one handled API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordMuseumRequest records one upstream museum API call.
func RecordMuseumRequest(museum string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	MuseumRequestsTotal.WithLabelValues(museum, outcome).Inc()
	MuseumRequestDuration.WithLabelValues(museum).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
