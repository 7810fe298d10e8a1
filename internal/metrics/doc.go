// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

/*
Package metrics provides Prometheus instrumentation for Musea.

Metrics are registered on the default registry via promauto and exposed at
/metrics by the API router.

Metric families:

HTTP:
  - api_requests_total (counter): method, endpoint, status_code
  - api_request_duration_seconds (histogram): method, endpoint
  - api_active_requests (gauge)

Museum upstreams:
  - museum_requests_total (counter): museum, outcome
  - museum_request_duration_seconds (histogram): museum
  - museum_circuit_breaker_state (gauge): museum (0=closed, 1=half-open, 2=open)
  - museum_circuit_breaker_transitions_total (counter): museum, from, to
  - response_cache_hits_total / response_cache_misses_total (counters)

Harvest:
  - harvest_runs_total (counter)
  - harvest_paintings_stored_total (counter): museum
  - harvest_errors_total (counter): museum
  - harvest_cycle_duration_seconds (histogram)

Discovery:
  - aggregation_duration_seconds (histogram): kind
  - aggregation_filter_fallbacks_total (counter)
  - spelling_suggestions_total (counter): outcome

Keep cardinality low: endpoint labels use route patterns, never raw paths,
and museum labels are the five fixed collection identifiers.
*/
package metrics
