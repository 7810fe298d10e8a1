// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package catalog

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(&config.DatabaseConfig{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedPaintings(t *testing.T, s *Store, paintings ...models.Painting) {
	t.Helper()
	n, err := s.Upsert(context.Background(), paintings)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if n != len(paintings) {
		t.Fatalf("Upsert wrote %d rows, want %d", n, len(paintings))
	}
}

func TestUpsertAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPaintings(t, s, models.Painting{
		ExternalID:  "27992",
		Museum:      "aic",
		MuseumName:  "Art Institute of Chicago",
		Title:       "A Sunday on La Grande Jatte",
		Artist:      "Georges Seurat",
		DateDisplay: "1884-1886",
		ImageURL:    "https://example.org/seurat.jpg",
		Metadata:    map[string]string{"department": "Painting and Sculpture"},
	})

	p, err := s.Get(ctx, "aic", "27992")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Title != "A Sunday on La Grande Jatte" {
		t.Fatalf("Get = %+v", p)
	}
	if p.Metadata["department"] != "Painting and Sculpture" {
		t.Errorf("metadata round trip failed: %v", p.Metadata)
	}

	// Upserting the same identity refreshes rather than duplicates.
	seedPaintings(t, s, models.Painting{
		ExternalID: "27992",
		Museum:     "aic",
		Title:      "A Sunday Afternoon on the Island of La Grande Jatte",
		Artist:     "Georges Seurat",
	})

	p, err = s.Get(ctx, "aic", "27992")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "A Sunday Afternoon on the Island of La Grande Jatte" {
		t.Errorf("upsert did not refresh title: %q", p.Title)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Paintings != 1 {
		t.Errorf("catalog holds %d paintings, want 1", stats.Paintings)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Get(context.Background(), "met", "nope")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("missing painting should be nil, got %+v", p)
	}
}

func TestUpsertSkipsRecordsWithoutIdentity(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Upsert(context.Background(), []models.Painting{
		{Museum: "aic", Title: "no id"},
		{ExternalID: "1", Title: "no museum"},
		{Museum: "aic", ExternalID: "1", Title: "ok"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("wrote %d rows, want 1", n)
	}
}

func TestUpsertNormalizesMissingArtist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPaintings(t, s, models.Painting{Museum: "smk", ExternalID: "KMS1", Title: "Untitled"})

	p, err := s.Get(ctx, "smk", "KMS1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Artist != models.UnknownArtist {
		t.Errorf("artist = %q, want %q", p.Artist, models.UnknownArtist)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPaintings(t, s,
		models.Painting{Museum: "aic", ExternalID: "1", Title: "Water Lilies", Artist: "Claude Monet"},
		models.Painting{Museum: "met", ExternalID: "2", Title: "Bridge over a Pond of Water Lilies", Artist: "Claude Monet"},
		models.Painting{Museum: "aic", ExternalID: "3", Title: "The Bedroom", Artist: "Vincent van Gogh"},
		models.Painting{Museum: "smk", ExternalID: "4", Title: "Storm", Artist: "P.S. Krøyer", Description: "waves and water"},
	)

	tests := []struct {
		query string
		want  int
	}{
		{"monet", 2},         // artist, case-insensitive
		{"water", 3},         // title and description matches
		{"van gogh", 1},      //
		{"krøyer", 1},        // accented artist
		{"100% cotton", 0},   // LIKE metacharacters are literal
		{"no such thing", 0}, //
	}

	for _, tt := range tests {
		res, err := s.Search(ctx, tt.query, 1, 50)
		if err != nil {
			t.Fatalf("Search(%q): %v", tt.query, err)
		}
		if res.Total != tt.want || len(res.Paintings) != tt.want {
			t.Errorf("Search(%q) = %d results (total %d), want %d", tt.query, len(res.Paintings), res.Total, tt.want)
		}
	}
}

func TestSearchPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var batch []models.Painting
	for i := 0; i < 7; i++ {
		batch = append(batch, models.Painting{
			Museum:     "aic",
			ExternalID: string(rune('a' + i)),
			Title:      "Harbor scene",
			Artist:     "Various",
		})
	}
	seedPaintings(t, s, batch...)

	page1, err := s.Search(ctx, "harbor", 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	page3, err := s.Search(ctx, "harbor", 3, 3)
	if err != nil {
		t.Fatal(err)
	}

	if page1.Total != 7 || len(page1.Paintings) != 3 {
		t.Errorf("page 1: total %d, %d rows", page1.Total, len(page1.Paintings))
	}
	if page3.Total != 7 || len(page3.Paintings) != 1 {
		t.Errorf("page 3: total %d, %d rows", page3.Total, len(page3.Paintings))
	}
}

func TestRandom(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Empty catalog yields nil without an error.
	p, err := s.Random(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatalf("empty catalog should yield nil, got %+v", p)
	}

	seedPaintings(t, s,
		models.Painting{Museum: "aic", ExternalID: "1", Title: "One", Artist: "A"},
		models.Painting{Museum: "met", ExternalID: "2", Title: "Two", Artist: "B"},
	)

	for i := 0; i < 10; i++ {
		p, err := s.Random(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if p == nil || (p.ExternalID != "1" && p.ExternalID != "2") {
			t.Fatalf("Random returned unexpected painting: %+v", p)
		}
	}
}

func TestStatsPerMuseum(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPaintings(t, s,
		models.Painting{Museum: "aic", ExternalID: "1", Title: "One", Artist: "A"},
		models.Painting{Museum: "aic", ExternalID: "2", Title: "Two", Artist: "B"},
		models.Painting{Museum: "smk", ExternalID: "3", Title: "Three", Artist: "A"},
	)

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Paintings != 3 || stats.Artists != 2 || stats.Museums != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.PerMuseum["aic"] != 2 || stats.PerMuseum["smk"] != 1 {
		t.Errorf("per-museum = %v", stats.PerMuseum)
	}
}
