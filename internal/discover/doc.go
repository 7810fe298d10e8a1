// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package discover implements the category-based painting aggregation and
// ranking engine, together with its supporting algorithms: era inference
// from free-text date strings and fuzzy spelling correction for artist
// search.
//
// The engine fans out one search per category term against a Painting
// Source, merges and deduplicates the results, optionally filters eras by
// inferred year, then applies a deterministic shuffle seeded from the
// category key so that pagination is stable across requests: page 2 always
// continues exactly where page 1 left off, for the same catalog contents.
//
// The package holds no mutable state beyond per-call locals; an Engine is
// safe for concurrent use.
package discover
