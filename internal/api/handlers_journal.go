// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/museadev/musea/internal/journal"
	"github.com/museadev/musea/internal/models"
	"github.com/museadev/musea/internal/validation"
)

// maxBodyBytes bounds request bodies on the journal endpoints.
const maxBodyBytes = 1 << 20

type addFavoriteRequest struct {
	Museum     string `json:"museum" validate:"required,museum"`
	ExternalID string `json:"external_id" validate:"required,min=1,max=256"`

	// Snapshot fields. When omitted, the painting is looked up in the
	// catalog (and upstream) so the favorite still stores a full record.
	Title       string            `json:"title"`
	Artist      string            `json:"artist"`
	DateDisplay string            `json:"date_display"`
	Medium      string            `json:"medium"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	ThumbURL    string            `json:"thumbnail_url"`
	MuseumURL   string            `json:"museum_url"`
	MuseumName  string            `json:"museum_name"`
	Metadata    map[string]string `json:"metadata"`
}

// FavoriteAdd saves a painting to the journal.
func (h *Handler) FavoriteAdd(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req addFavoriteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	req.Museum = strings.ToLower(req.Museum)
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	painting := models.Painting{
		ExternalID:  req.ExternalID,
		Museum:      req.Museum,
		MuseumName:  req.MuseumName,
		Title:       req.Title,
		Artist:      req.Artist,
		DateDisplay: req.DateDisplay,
		Medium:      req.Medium,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ThumbURL:    req.ThumbURL,
		MuseumURL:   req.MuseumURL,
		Metadata:    req.Metadata,
	}

	if painting.Title == "" {
		if full := h.lookupPainting(r, req.Museum, req.ExternalID); full != nil {
			painting = *full
		}
	}

	id, err := h.journal.AddFavorite(r.Context(), &painting)
	if errors.Is(err, journal.ErrAlreadyFavorite) {
		respondError(w, r, http.StatusConflict, "ALREADY_FAVORITE",
			"painting is already a favorite", map[string]interface{}{"id": id})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to add favorite")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to add favorite", nil)
		return
	}

	respondSuccess(w, r, map[string]string{"id": id}, started)
}

// lookupPainting enriches a bare (museum, id) pair with the stored or
// upstream record. Failures degrade to the caller's snapshot.
func (h *Handler) lookupPainting(r *http.Request, museum, externalID string) *models.Painting {
	p, err := h.catalog.Get(r.Context(), museum, externalID)
	if err == nil && p != nil {
		return p
	}
	p, err = h.museums.GetPainting(r.Context(), museum, externalID)
	if err != nil {
		h.logger.Debug().Err(err).Msg("favorite enrichment lookup failed")
		return nil
	}
	return p
}

// FavoriteList lists favorites, optionally filtered by artist, museum, or tag.
func (h *Handler) FavoriteList(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	filter := models.FavoriteFilter{
		Artist: strings.TrimSpace(r.URL.Query().Get("artist")),
		Museum: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("museum"))),
		Tag:    strings.TrimSpace(r.URL.Query().Get("tag")),
	}

	favorites, err := h.journal.ListFavorites(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list favorites")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to list favorites", nil)
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	respondSuccess(w, r, map[string]interface{}{
		"favorites": favorites,
		"total":     len(favorites),
	}, started)
}

// FavoriteGet returns one favorite with its tags and journal entries.
func (h *Handler) FavoriteGet(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	fav, err := h.journal.GetFavorite(r.Context(), chi.URLParam(r, "id"))
	if h.respondJournalError(w, r, err, "failed to load favorite") {
		return
	}
	respondSuccess(w, r, fav, started)
}

// FavoriteRandom returns a random favorite, the "painting of the day".
func (h *Handler) FavoriteRandom(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	fav, err := h.journal.RandomFavorite(r.Context())
	if errors.Is(err, journal.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "no favorites yet", nil)
		return
	}
	if h.respondJournalError(w, r, err, "failed to pick a favorite") {
		return
	}
	respondSuccess(w, r, fav, started)
}

// FavoriteRemove deletes a favorite along with its tags and entries.
func (h *Handler) FavoriteRemove(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	err := h.journal.RemoveFavorite(r.Context(), chi.URLParam(r, "id"))
	if h.respondJournalError(w, r, err, "failed to remove favorite") {
		return
	}
	respondSuccess(w, r, map[string]string{"status": "removed"}, started)
}

type tagRequest struct {
	Tag string `json:"tag" validate:"required,tagname,max=64"`
}

// TagAdd attaches a tag to a favorite, creating the tag if needed.
func (h *Handler) TagAdd(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req tagRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	err := h.journal.AddTag(r.Context(), chi.URLParam(r, "id"), req.Tag)
	if h.respondJournalError(w, r, err, "failed to add tag") {
		return
	}
	respondSuccess(w, r, map[string]string{"status": "tagged"}, started)
}

// TagRemove detaches a tag from a favorite.
func (h *Handler) TagRemove(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	err := h.journal.RemoveTag(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "tag"))
	if h.respondJournalError(w, r, err, "failed to remove tag") {
		return
	}
	respondSuccess(w, r, map[string]string{"status": "untagged"}, started)
}

// TagList lists every tag in use with its favorite count.
func (h *Handler) TagList(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	tags, err := h.journal.Tags(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list tags")
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to list tags", nil)
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	respondSuccess(w, r, map[string]interface{}{"tags": tags}, started)
}

type entryRequest struct {
	Text string `json:"entry_text" validate:"required,min=1,max=10000"`
}

// EntryAdd appends a journal entry to a favorite.
func (h *Handler) EntryAdd(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req entryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	id, err := h.journal.AddEntry(r.Context(), chi.URLParam(r, "id"), req.Text)
	if h.respondJournalError(w, r, err, "failed to add journal entry") {
		return
	}
	respondSuccess(w, r, map[string]string{"id": id}, started)
}

// EntryList lists a favorite's journal entries, newest first.
func (h *Handler) EntryList(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	entries, err := h.journal.Entries(r.Context(), chi.URLParam(r, "id"))
	if h.respondJournalError(w, r, err, "failed to list journal entries") {
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	respondSuccess(w, r, map[string]interface{}{"entries": entries}, started)
}

// EntryUpdate replaces an entry's text and bumps its updated timestamp.
func (h *Handler) EntryUpdate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req entryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	err := h.journal.UpdateEntry(r.Context(), chi.URLParam(r, "id"), req.Text)
	if h.respondJournalError(w, r, err, "failed to update journal entry") {
		return
	}
	respondSuccess(w, r, map[string]string{"status": "updated"}, started)
}

// EntryDelete removes one journal entry.
func (h *Handler) EntryDelete(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	err := h.journal.DeleteEntry(r.Context(), chi.URLParam(r, "id"))
	if h.respondJournalError(w, r, err, "failed to delete journal entry") {
		return
	}
	respondSuccess(w, r, map[string]string{"status": "deleted"}, started)
}

// decodeBody decodes a JSON request body, writing a VALIDATION_ERROR and
// returning false when it is malformed.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"request body is not valid JSON", nil)
		return false
	}
	return true
}

// respondJournalError maps journal store errors onto HTTP responses.
// Returns true when a response was written.
func (h *Handler) respondJournalError(w http.ResponseWriter, r *http.Request, err error, message string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, journal.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "no such record", nil)
		return true
	}
	h.logger.Error().Err(err).Msg(message)
	respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", message, nil)
	return true
}
