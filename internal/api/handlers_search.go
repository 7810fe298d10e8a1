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
	"github.com/museadev/musea/internal/validation"
)

type searchParams struct {
	Query  string `validate:"required,min=1,max=200"`
	Museum string `validate:"omitempty,museum"`
}

// Search runs a plain-text painting search across the enabled museums.
// When the result set is sparse, a spelling suggestion from the known-artist
// vocabulary is attached so a typo ("van gogh" vs "van ghog") still leads
// somewhere.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	params := searchParams{
		Query:  strings.TrimSpace(r.URL.Query().Get("q")),
		Museum: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("museum"))),
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}
	page, limit := h.pagination(r)

	result, err := h.museums.SearchAll(r.Context(), params.Query, params.Museum, page, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("query", params.Query).Msg("search failed")
		respondError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR",
			"museum search failed", nil)
		return
	}

	data := map[string]interface{}{
		"query":     params.Query,
		"paintings": result.Paintings,
		"total":     result.Total,
		"page":      page,
		"limit":     limit,
	}

	if result.Total < h.cfg.Discover.SuggestionThreshold {
		if suggestion, ok := discover.SuggestSpelling(params.Query); ok {
			data["suggestion"] = suggestion
			metrics.SpellingSuggestions.WithLabelValues("suggested").Inc()
		} else {
			metrics.SpellingSuggestions.WithLabelValues("none").Inc()
		}
	}

	respondSuccess(w, r, data, started)
}

type paintingPath struct {
	Museum     string `validate:"required,museum"`
	ExternalID string `validate:"required,min=1,max=256"`
}

// PaintingDetail returns one painting, preferring the local catalog and
// falling back to the owning museum's API.
func (h *Handler) PaintingDetail(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	path := paintingPath{
		Museum:     strings.ToLower(chi.URLParam(r, "museum")),
		ExternalID: chi.URLParam(r, "id"),
	}
	if verr := validation.ValidateStruct(&path); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	painting, err := h.catalog.Get(r.Context(), path.Museum, path.ExternalID)
	if err != nil {
		h.logger.Error().Err(err).Msg("catalog lookup failed")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"catalog lookup failed", nil)
		return
	}

	if painting == nil {
		painting, err = h.museums.GetPainting(r.Context(), path.Museum, path.ExternalID)
		if err != nil {
			h.logger.Warn().Err(err).
				Str("museum", path.Museum).
				Str("external_id", path.ExternalID).
				Msg("upstream painting lookup failed")
			respondError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR",
				"museum lookup failed", nil)
			return
		}
	}

	if painting == nil {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "painting not found", nil)
		return
	}

	respondSuccess(w, r, painting, started)
}
