// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package discover

import (
	"math/rand"
	"time"
)

// CategoryKind discriminates the three kinds of browsing categories.
type CategoryKind string

const (
	// KindEra is a historical art period with a canonical year range.
	KindEra CategoryKind = "era"
	// KindTheme is a subject-matter grouping with no inherent date range.
	KindTheme CategoryKind = "theme"
	// KindMood is a curated affective grouping of hand-picked artists and terms.
	KindMood CategoryKind = "mood"
)

// ParseCategoryKind validates a kind string from a request path.
func ParseCategoryKind(s string) (CategoryKind, bool) {
	switch CategoryKind(s) {
	case KindEra, KindTheme, KindMood:
		return CategoryKind(s), true
	default:
		return "", false
	}
}

// Category is one statically defined browsing category. Categories are
// immutable reference data loaded at process start; they are never created,
// mutated, or destroyed at runtime.
type Category struct {
	Key         string       `json:"key"`
	Kind        CategoryKind `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`

	// Years is the era's canonical range as "YYYY-YYYY". Empty for
	// themes and moods.
	Years string `json:"years,omitempty"`

	// Artists are the canonical artists for eras and moods.
	Artists []string `json:"artists,omitempty"`

	// SearchTerms are the catalog queries aggregated for this category.
	SearchTerms []string `json:"search_terms"`

	// WallColor is a presentation hint for era pages.
	WallColor string `json:"wall_color,omitempty"`

	// Icon is a presentation hint for theme pages.
	Icon string `json:"icon,omitempty"`
}

// FeaturedArtist is a daily-rotating artist highlight.
type FeaturedArtist struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Era      string `json:"era"`
	Bio      string `json:"bio"`
}

// Eras returns the era categories in registry order.
func Eras() []Category { return eras }

// Themes returns the theme categories in registry order.
func Themes() []Category { return themes }

// Moods returns the mood categories in registry order.
func Moods() []Category { return moods }

// Lookup finds a category by kind and key. The second return is false for
// an unknown kind or key; callers treat that as a normal not-found outcome.
func Lookup(kind CategoryKind, key string) (Category, bool) {
	var table []Category
	switch kind {
	case KindEra:
		table = eras
	case KindTheme:
		table = themes
	case KindMood:
		table = moods
	default:
		return Category{}, false
	}
	for _, c := range table {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// RandomArtist picks a random notable artist from the era tables, for the
// "Surprise Me" feature.
func RandomArtist() string {
	seen := make(map[string]struct{})
	var all []string
	for _, era := range eras {
		for _, a := range era.Artists {
			if _, dup := seen[a]; !dup {
				seen[a] = struct{}{}
				all = append(all, a)
			}
		}
	}
	return all[rand.Intn(len(all))] //nolint:gosec // presentation choice, not security
}

// Featured returns today's featured artist. The rotation is keyed on the
// calendar day so the pick is stable within a day and changes overnight.
func Featured(now time.Time) FeaturedArtist {
	idx := dayOrdinal(now) % len(featuredArtists)
	return featuredArtists[idx]
}

// WeeklySpotlight returns the era spotlighted this week.
func WeeklySpotlight(now time.Time) Category {
	idx := (dayOrdinal(now) / 7) % len(eras)
	return eras[idx]
}

// dayOrdinal counts whole days since the Unix epoch in UTC.
func dayOrdinal(now time.Time) int {
	return int(now.UTC().Unix() / (24 * 60 * 60))
}
