// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package api provides the HTTP surface of Musea using the Chi router.
//
// All endpoints live under /api/v1 and return the standard envelope
// {status, data, metadata, error}. Handlers depend on small interfaces
// (Aggregator, PaintingCatalog, MuseumGateway, JournalStore) so tests can
// exercise them with in-memory stubs.
package api
