// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package models

// UnknownArtist is the sentinel artist value used when a museum record
// carries no attribution. Every museum adapter must normalize to this.
const UnknownArtist = "Unknown Artist"

// Painting is the normalized painting record shared by every museum adapter,
// the local catalog, and the discovery engine. Each museum API has its own
// response schema; adapters convert to this type at the boundary so nothing
// downstream needs to know which museum a record came from.
//
// The pair (Museum, ExternalID) uniquely identifies a painting. Museum is a
// short stable collection identifier ("aic", "met", "cleveland", "smk",
// "harvard"); ExternalID is unique within that collection.
type Painting struct {
	ExternalID  string            `json:"external_id"`
	Museum      string            `json:"museum"`
	MuseumName  string            `json:"museum_name"`
	Title       string            `json:"title"`
	Artist      string            `json:"artist"`
	DateDisplay string            `json:"date_display"`
	Medium      string            `json:"medium,omitempty"`
	Dimensions  string            `json:"dimensions,omitempty"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	ThumbURL    string            `json:"thumbnail_url,omitempty"`
	MuseumURL   string            `json:"museum_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Key returns the composite dedup key for a painting.
func (p *Painting) Key() string {
	return p.Museum + ":" + p.ExternalID
}

// HasImage reports whether the record carries a displayable image.
// Records without images are excluded from representative/preview
// selection but still appear in search results.
func (p *Painting) HasImage() bool {
	return p.ImageURL != ""
}

// SearchResult is a page of paintings from a Painting Source search.
// Total is the source's best-effort total match count, which may exceed
// len(Paintings) when the result set is paginated.
type SearchResult struct {
	Paintings []Painting `json:"paintings"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
}

// CollectionStats summarizes the local painting catalog.
type CollectionStats struct {
	Paintings int            `json:"paintings"`
	Artists   int            `json:"artists"`
	Museums   int            `json:"museums"`
	PerMuseum map[string]int `json:"per_museum,omitempty"`
}
