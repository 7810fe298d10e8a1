// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/cache"
	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/discover"
	"github.com/museadev/musea/internal/models"
)

// Aggregator is the discovery engine surface the handlers use.
type Aggregator interface {
	FetchByCategory(ctx context.Context, kind discover.CategoryKind, key string, page, limit int) (discover.AggregatedResult, error)
	FetchSurprise(ctx context.Context) (*models.Painting, error)
	FetchArtistWorks(ctx context.Context, artist string, limit int) ([]models.Painting, error)
	Stats() (aggregations, termFailures, filterFallbacks int64)
}

// PaintingCatalog is the local catalog surface the handlers use.
type PaintingCatalog interface {
	Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error)
	Get(ctx context.Context, museum, externalID string) (*models.Painting, error)
	Stats(ctx context.Context) (models.CollectionStats, error)
	Ping(ctx context.Context) error
}

// MuseumGateway is the upstream museum fan-out surface.
type MuseumGateway interface {
	SearchAll(ctx context.Context, query, museum string, page, limit int) (models.SearchResult, error)
	GetPainting(ctx context.Context, museum, externalID string) (*models.Painting, error)
	Museums() []string
}

// JournalStore is the favorites/tags/journal surface.
type JournalStore interface {
	AddFavorite(ctx context.Context, p *models.Painting) (string, error)
	RemoveFavorite(ctx context.Context, id string) error
	GetFavorite(ctx context.Context, id string) (*models.Favorite, error)
	ListFavorites(ctx context.Context, filter models.FavoriteFilter) ([]models.Favorite, error)
	RandomFavorite(ctx context.Context) (*models.Favorite, error)
	AddTag(ctx context.Context, favoriteID, tagName string) error
	RemoveTag(ctx context.Context, favoriteID, tagName string) error
	Tags(ctx context.Context) ([]models.Tag, error)
	AddEntry(ctx context.Context, favoriteID, text string) (string, error)
	UpdateEntry(ctx context.Context, entryID, text string) error
	DeleteEntry(ctx context.Context, entryID string) error
	Entries(ctx context.Context, favoriteID string) ([]models.JournalEntry, error)
}

// Handler bundles the endpoint implementations and their dependencies.
type Handler struct {
	engine  Aggregator
	catalog PaintingCatalog
	museums MuseumGateway
	journal JournalStore
	cache   *cache.Cache
	cfg     *config.Config
	logger  zerolog.Logger
	started time.Time
}

// NewHandler creates the endpoint handler set. cache may be nil when the
// response cache is disabled; its stats are then reported as zero.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(
	engine Aggregator,
	catalog PaintingCatalog,
	museums MuseumGateway,
	journal JournalStore,
	responseCache *cache.Cache,
	cfg *config.Config,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		engine:  engine,
		catalog: catalog,
		museums: museums,
		journal: journal,
		cache:   responseCache,
		cfg:     cfg,
		logger:  logger.With().Str("component", "api").Logger(),
		started: time.Now(),
	}
}

// HealthLive reports process liveness. Always 200 while the process serves.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]string{"status": "alive"}, time.Time{})
}

// HealthReady reports readiness: the catalog database must answer a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.catalog.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("readiness check failed")
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY",
			"catalog database is not reachable", nil)
		return
	}
	respondSuccess(w, r, map[string]string{"status": "ready"}, time.Time{})
}

// Stats reports collection, aggregation, and cache statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	collection, err := h.catalog.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read catalog stats")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to read catalog statistics", nil)
		return
	}

	aggregations, termFailures, filterFallbacks := h.engine.Stats()

	data := map[string]interface{}{
		"collection": collection,
		"museums":    h.museums.Museums(),
		"discovery": map[string]int64{
			"aggregations":     aggregations,
			"term_failures":    termFailures,
			"filter_fallbacks": filterFallbacks,
		},
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}
	if h.cache != nil {
		data["cache"] = h.cache.Stats()
	}

	respondSuccess(w, r, data, started)
}

// pagination parses page/limit query parameters, clamping limit to the
// configured bounds. Invalid values fall back to defaults rather than
// erroring; out-of-range pages are handled downstream as empty results.
func (h *Handler) pagination(r *http.Request) (page, limit int) {
	page = 1
	limit = h.cfg.API.DefaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			limit = n
		}
	}
	if limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.MaxPageSize
	}
	return page, limit
}
