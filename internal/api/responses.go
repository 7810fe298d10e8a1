// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/museadev/musea/internal/logging"
	"github.com/museadev/musea/internal/models"
)

// respondSuccess writes a success envelope. started stamps QueryTimeMS;
// pass the zero time to omit it.
func respondSuccess(w http.ResponseWriter, r *http.Request, data any, started time.Time) {
	resp := models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: buildMetadata(started),
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// respondError writes an error envelope with the given HTTP status.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	resp := models.APIResponse{
		Status:   "error",
		Metadata: buildMetadata(time.Time{}),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJSON(w, r, status, resp)
}

func buildMetadata(started time.Time) models.Metadata {
	meta := models.Metadata{Timestamp: time.Now().UTC()}
	if !started.IsZero() {
		meta.QueryTimeMS = time.Since(started).Milliseconds()
	}
	return meta
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// The status line is already on the wire; log and move on.
		logging.Ctx(r.Context()).Error().Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
