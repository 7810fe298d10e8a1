// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/museadev/musea/internal/discover"
	"github.com/museadev/musea/internal/metrics"
	"github.com/museadev/musea/internal/models"
	"github.com/museadev/musea/internal/validation"
)

// Categories lists every browsing category plus the rotating highlights.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	data := map[string]interface{}{
		"eras":             discover.Eras(),
		"themes":           discover.Themes(),
		"moods":            discover.Moods(),
		"featured_artist":  discover.Featured(now),
		"weekly_spotlight": discover.WeeklySpotlight(now),
	}
	respondSuccess(w, r, data, time.Time{})
}

type categoryPath struct {
	Kind string `validate:"required,categorykind"`
	Key  string `validate:"required,min=1,max=64"`
}

// CategoryPage returns one page of a category's aggregated paintings. Page
// order is deterministic per category, so the same page request always
// returns the same paintings.
func (h *Handler) CategoryPage(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	path := categoryPath{
		Kind: strings.ToLower(chi.URLParam(r, "kind")),
		Key:  strings.ToLower(chi.URLParam(r, "key")),
	}
	if verr := validation.ValidateStruct(&path); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}
	kind, _ := discover.ParseCategoryKind(path.Kind)
	page, limit := h.pagination(r)

	result, err := h.engine.FetchByCategory(r.Context(), kind, path.Key, page, limit)
	if err != nil {
		h.logger.Error().Err(err).
			Str("kind", path.Kind).
			Str("key", path.Key).
			Msg("category aggregation failed")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"category aggregation failed", nil)
		return
	}
	metrics.AggregationDuration.WithLabelValues(path.Kind).Observe(time.Since(started).Seconds())

	if result.Category == nil {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "unknown category", nil)
		return
	}

	respondSuccess(w, r, map[string]interface{}{
		"category":  result.Category,
		"paintings": result.Paintings,
		"total":     result.Total,
		"page":      page,
		"limit":     limit,
	}, started)
}

// Surprise returns a single random painting from the catalog.
func (h *Handler) Surprise(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	painting, err := h.engine.FetchSurprise(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("surprise lookup failed")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"random painting lookup failed", nil)
		return
	}
	if painting == nil {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND",
			"the catalog is empty, run a harvest first", nil)
		return
	}
	respondSuccess(w, r, painting, started)
}

type artistPath struct {
	Name string `validate:"required,min=2,max=120"`
}

// ArtistWorks returns works attributed to a named artist.
func (h *Handler) ArtistWorks(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	path := artistPath{Name: strings.TrimSpace(chi.URLParam(r, "name"))}
	if verr := validation.ValidateStruct(&path); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}
	_, limit := h.pagination(r)

	paintings, err := h.engine.FetchArtistWorks(r.Context(), path.Name, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("artist", path.Name).Msg("artist lookup failed")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"artist lookup failed", nil)
		return
	}

	respondSuccess(w, r, map[string]interface{}{
		"artist":    path.Name,
		"paintings": paintings,
		"total":     len(paintings),
	}, started)
}

// categoryPreview pairs a category with one representative painting.
type categoryPreview struct {
	Category discover.Category `json:"category"`
	Painting *models.Painting  `json:"painting,omitempty"`
}

// Preview returns every category with a representative painting for the
// explore landing page. The representative is the first image-bearing hit
// for the category's artists, then its search terms.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var previews []categoryPreview
	for _, table := range [][]discover.Category{discover.Eras(), discover.Themes(), discover.Moods()} {
		for _, cat := range table {
			previews = append(previews, categoryPreview{
				Category: cat,
				Painting: h.representative(r, cat),
			})
		}
	}

	respondSuccess(w, r, map[string]interface{}{"previews": previews}, started)
}

// representative finds the first image-bearing painting for a category, or
// nil when the catalog has nothing for it yet.
func (h *Handler) representative(r *http.Request, cat discover.Category) *models.Painting {
	terms := append(append([]string{}, cat.Artists...), cat.SearchTerms...)
	for _, term := range terms {
		result, err := h.catalog.Search(r.Context(), term, 1, 5)
		if err != nil {
			h.logger.Debug().Err(err).Str("term", term).Msg("preview search failed")
			continue
		}
		for i := range result.Paintings {
			if result.Paintings[i].HasImage() {
				return &result.Paintings[i]
			}
		}
	}
	return nil
}
