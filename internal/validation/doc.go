// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps the library in a thread-safe singleton with custom validators for
// Musea's request payloads and translates failures into the API's
// VALIDATION_ERROR format.
//
// Custom validators:
//   - museum: a known museum identifier (aic, met, cleveland, smk, harvard)
//   - categorykind: era, theme, or mood
//   - tagname: a non-empty tag name without commas
//
// # Quick Start
//
//	type AddFavoriteRequest struct {
//	    Museum     string `validate:"required,museum"`
//	    ExternalID string `validate:"required,min=1,max=256"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
