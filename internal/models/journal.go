// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package models

import "time"

// Favorite is a painting the user has saved, with a snapshot of the painting
// fields at save time. Favorites are unique per (Museum, ExternalID).
type Favorite struct {
	ID        string    `json:"id"`
	Painting  Painting  `json:"painting"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`

	// Entries is populated only when a single favorite is fetched.
	Entries []JournalEntry `json:"entries,omitempty"`
}

// JournalEntry is one dated note attached to a favorite.
type JournalEntry struct {
	ID         string    `json:"id"`
	FavoriteID string    `json:"favorite_id"`
	Text       string    `json:"entry_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Tag is a user-defined label with its usage count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FavoriteFilter narrows favorite listings. Zero values mean no constraint.
type FavoriteFilter struct {
	Artist string
	Museum string
	Tag    string
}
