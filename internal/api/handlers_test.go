// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/discover"
	"github.com/museadev/musea/internal/journal"
	"github.com/museadev/musea/internal/models"
)

// ---------------------------------------------------------------------------
// stubs

type stubEngine struct {
	category discover.AggregatedResult
	surprise *models.Painting
	works    []models.Painting
	err      error
}

func (s *stubEngine) FetchByCategory(ctx context.Context, kind discover.CategoryKind, key string, page, limit int) (discover.AggregatedResult, error) {
	return s.category, s.err
}

func (s *stubEngine) FetchSurprise(ctx context.Context) (*models.Painting, error) {
	return s.surprise, s.err
}

func (s *stubEngine) FetchArtistWorks(ctx context.Context, artist string, limit int) ([]models.Painting, error) {
	return s.works, s.err
}

func (s *stubEngine) Stats() (int64, int64, int64) { return 7, 1, 0 }

type stubCatalog struct {
	paintings map[string]*models.Painting
	search    models.SearchResult
	stats     models.CollectionStats
	pingErr   error
}

func (s *stubCatalog) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	return s.search, nil
}

func (s *stubCatalog) Get(ctx context.Context, museum, externalID string) (*models.Painting, error) {
	return s.paintings[museum+":"+externalID], nil
}

func (s *stubCatalog) Stats(ctx context.Context) (models.CollectionStats, error) {
	return s.stats, nil
}

func (s *stubCatalog) Ping(ctx context.Context) error { return s.pingErr }

type stubGateway struct {
	result    models.SearchResult
	err       error
	paintings map[string]*models.Painting
}

func (s *stubGateway) SearchAll(ctx context.Context, query, museum string, page, limit int) (models.SearchResult, error) {
	return s.result, s.err
}

func (s *stubGateway) GetPainting(ctx context.Context, museum, externalID string) (*models.Painting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.paintings[museum+":"+externalID], nil
}

func (s *stubGateway) Museums() []string { return []string{"aic", "smk"} }

// stubJournal is a small in-memory JournalStore.
type stubJournal struct {
	favorites map[string]*models.Favorite
	entries   map[string]*models.JournalEntry
	nextID    int
}

func newStubJournal() *stubJournal {
	return &stubJournal{
		favorites: make(map[string]*models.Favorite),
		entries:   make(map[string]*models.JournalEntry),
	}
}

func (s *stubJournal) id() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *stubJournal) AddFavorite(ctx context.Context, p *models.Painting) (string, error) {
	for id, fav := range s.favorites {
		if fav.Painting.Museum == p.Museum && fav.Painting.ExternalID == p.ExternalID {
			return id, journal.ErrAlreadyFavorite
		}
	}
	id := s.id()
	s.favorites[id] = &models.Favorite{ID: id, Painting: *p, Tags: []string{}, CreatedAt: time.Now()}
	return id, nil
}

func (s *stubJournal) RemoveFavorite(ctx context.Context, id string) error {
	if _, ok := s.favorites[id]; !ok {
		return journal.ErrNotFound
	}
	delete(s.favorites, id)
	return nil
}

func (s *stubJournal) GetFavorite(ctx context.Context, id string) (*models.Favorite, error) {
	fav, ok := s.favorites[id]
	if !ok {
		return nil, journal.ErrNotFound
	}
	return fav, nil
}

func (s *stubJournal) ListFavorites(ctx context.Context, filter models.FavoriteFilter) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, fav := range s.favorites {
		if filter.Museum != "" && fav.Painting.Museum != filter.Museum {
			continue
		}
		out = append(out, *fav)
	}
	return out, nil
}

func (s *stubJournal) RandomFavorite(ctx context.Context) (*models.Favorite, error) {
	for _, fav := range s.favorites {
		return fav, nil
	}
	return nil, journal.ErrNotFound
}

func (s *stubJournal) AddTag(ctx context.Context, favoriteID, tagName string) error {
	fav, ok := s.favorites[favoriteID]
	if !ok {
		return journal.ErrNotFound
	}
	fav.Tags = append(fav.Tags, strings.ToLower(strings.TrimSpace(tagName)))
	return nil
}

func (s *stubJournal) RemoveTag(ctx context.Context, favoriteID, tagName string) error {
	if _, ok := s.favorites[favoriteID]; !ok {
		return journal.ErrNotFound
	}
	return nil
}

func (s *stubJournal) Tags(ctx context.Context) ([]models.Tag, error) {
	counts := make(map[string]int)
	for _, fav := range s.favorites {
		for _, tag := range fav.Tags {
			counts[tag]++
		}
	}
	var out []models.Tag
	for name, n := range counts {
		out = append(out, models.Tag{Name: name, Count: n})
	}
	return out, nil
}

func (s *stubJournal) AddEntry(ctx context.Context, favoriteID, text string) (string, error) {
	if _, ok := s.favorites[favoriteID]; !ok {
		return "", journal.ErrNotFound
	}
	id := s.id()
	s.entries[id] = &models.JournalEntry{ID: id, FavoriteID: favoriteID, Text: text}
	return id, nil
}

func (s *stubJournal) UpdateEntry(ctx context.Context, entryID, text string) error {
	entry, ok := s.entries[entryID]
	if !ok {
		return journal.ErrNotFound
	}
	entry.Text = text
	return nil
}

func (s *stubJournal) DeleteEntry(ctx context.Context, entryID string) error {
	if _, ok := s.entries[entryID]; !ok {
		return journal.ErrNotFound
	}
	delete(s.entries, entryID)
	return nil
}

func (s *stubJournal) Entries(ctx context.Context, favoriteID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, e := range s.entries {
		if e.FavoriteID == favoriteID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// helpers

type testDeps struct {
	engine  *stubEngine
	catalog *stubCatalog
	gateway *stubGateway
	journal *stubJournal
}

func newTestServer(t *testing.T, deps testDeps) *httptest.Server {
	t.Helper()

	if deps.engine == nil {
		deps.engine = &stubEngine{}
	}
	if deps.catalog == nil {
		deps.catalog = &stubCatalog{paintings: map[string]*models.Painting{}}
	}
	if deps.gateway == nil {
		deps.gateway = &stubGateway{paintings: map[string]*models.Painting{}}
	}
	if deps.journal == nil {
		deps.journal = newStubJournal()
	}

	cfg := &config.Config{
		API:      config.APIConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Discover: config.DiscoverConfig{SuggestionThreshold: 3},
	}

	handler := NewHandler(deps.engine, deps.catalog, deps.gateway, deps.journal, nil, cfg, zerolog.Nop())
	router := NewRouter(handler, &MiddlewareConfig{RateLimitDisabled: true})

	srv := httptest.NewServer(router.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, models.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, envelope
}

func dataMap(t *testing.T, envelope models.APIResponse) map[string]interface{} {
	t.Helper()
	m, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data has type %T", envelope.Data)
	}
	return m
}

func testPainting(museum, id string) models.Painting {
	return models.Painting{
		ExternalID:  id,
		Museum:      museum,
		MuseumName:  "Test Museum",
		Title:       "Painting " + id,
		Artist:      "Test Artist",
		DateDisplay: "1888",
		ImageURL:    "https://img.example/" + id + ".jpg",
	}
}

// ---------------------------------------------------------------------------
// health + stats

func TestHealthLive(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/health/live", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if envelope.Status != "success" {
		t.Errorf("envelope status = %q", envelope.Status)
	}
}

func TestHealthReadyDegrades(t *testing.T) {
	catalog := &stubCatalog{pingErr: errors.New("connection refused")}
	srv := newTestServer(t, testDeps{catalog: catalog})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/health/ready", nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	if envelope.Error == nil || envelope.Error.Code != "NOT_READY" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestStats(t *testing.T) {
	catalog := &stubCatalog{stats: models.CollectionStats{Paintings: 42, Artists: 7, Museums: 2}}
	srv := newTestServer(t, testDeps{catalog: catalog})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := dataMap(t, envelope)
	collection := data["collection"].(map[string]interface{})
	if collection["paintings"].(float64) != 42 {
		t.Errorf("collection.paintings = %v", collection["paintings"])
	}
	discovery := data["discovery"].(map[string]interface{})
	if discovery["aggregations"].(float64) != 7 {
		t.Errorf("discovery.aggregations = %v", discovery["aggregations"])
	}
}

// ---------------------------------------------------------------------------
// search + painting detail

func TestSearchRequiresQuery(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/search", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

func TestSearchRejectsUnknownMuseum(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/search?q=monet&museum=louvre", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchAttachesSuggestionWhenSparse(t *testing.T) {
	gateway := &stubGateway{result: models.SearchResult{Paintings: []models.Painting{}, Total: 0}}
	srv := newTestServer(t, testDeps{gateway: gateway})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/search?q=monnet", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := dataMap(t, envelope)
	if data["suggestion"] != "Monet" {
		t.Errorf("suggestion = %v, want Monet", data["suggestion"])
	}
}

func TestSearchSkipsSuggestionWhenPlentiful(t *testing.T) {
	p := testPainting("aic", "1")
	gateway := &stubGateway{result: models.SearchResult{Paintings: []models.Painting{p, p, p}, Total: 30}}
	srv := newTestServer(t, testDeps{gateway: gateway})

	_, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/search?q=monnet", nil)
	data := dataMap(t, envelope)
	if _, present := data["suggestion"]; present {
		t.Error("suggestion should be omitted for a full result set")
	}
	if data["total"].(float64) != 30 {
		t.Errorf("total = %v", data["total"])
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	gateway := &stubGateway{err: errors.New("all museums down")}
	srv := newTestServer(t, testDeps{gateway: gateway})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/search?q=monet", nil)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	if envelope.Error.Code != "UPSTREAM_ERROR" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

func TestPaintingDetailPrefersCatalog(t *testing.T) {
	local := testPainting("aic", "27992")
	local.Title = "From Catalog"
	catalog := &stubCatalog{paintings: map[string]*models.Painting{"aic:27992": &local}}
	gateway := &stubGateway{paintings: map[string]*models.Painting{}}
	srv := newTestServer(t, testDeps{catalog: catalog, gateway: gateway})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/paintings/aic/27992", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if dataMap(t, envelope)["title"] != "From Catalog" {
		t.Errorf("title = %v", dataMap(t, envelope)["title"])
	}
}

func TestPaintingDetailFallsBackUpstream(t *testing.T) {
	remote := testPainting("smk", "KMS1")
	gateway := &stubGateway{paintings: map[string]*models.Painting{"smk:KMS1": &remote}}
	srv := newTestServer(t, testDeps{gateway: gateway})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/paintings/smk/KMS1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if dataMap(t, envelope)["external_id"] != "KMS1" {
		t.Errorf("external_id = %v", dataMap(t, envelope)["external_id"])
	}
}

func TestPaintingDetailNotFound(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/paintings/aic/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

// ---------------------------------------------------------------------------
// explore

func TestCategoriesListsRegistry(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/categories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := dataMap(t, envelope)
	if len(data["eras"].([]interface{})) != len(discover.Eras()) {
		t.Error("eras list does not match the registry")
	}
	if data["featured_artist"] == nil || data["weekly_spotlight"] == nil {
		t.Error("rotating highlights missing")
	}
}

func TestCategoryPage(t *testing.T) {
	cat, _ := discover.Lookup(discover.KindMood, "peaceful")
	engine := &stubEngine{category: discover.AggregatedResult{
		Paintings: []models.Painting{testPainting("aic", "1")},
		Total:     1,
		Category:  &cat,
	}}
	srv := newTestServer(t, testDeps{engine: engine})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/mood/peaceful?page=1&limit=10", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := dataMap(t, envelope)
	if data["total"].(float64) != 1 {
		t.Errorf("total = %v", data["total"])
	}
}

func TestCategoryPageUnknownKind(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/genre/anything", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCategoryPageUnknownKey(t *testing.T) {
	// Engine returns an empty result with a nil Category for unknown keys.
	srv := newTestServer(t, testDeps{engine: &stubEngine{}})
	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/era/atlantis", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

func TestSurprise(t *testing.T) {
	p := testPainting("smk", "KMS42")
	srv := newTestServer(t, testDeps{engine: &stubEngine{surprise: &p}})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/surprise", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if dataMap(t, envelope)["external_id"] != "KMS42" {
		t.Errorf("external_id = %v", dataMap(t, envelope)["external_id"])
	}
}

func TestSurpriseEmptyCatalog(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/surprise", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestArtistWorks(t *testing.T) {
	engine := &stubEngine{works: []models.Painting{testPainting("aic", "1"), testPainting("aic", "2")}}
	srv := newTestServer(t, testDeps{engine: engine})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/artist/Monet", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := dataMap(t, envelope)
	if data["total"].(float64) != 2 {
		t.Errorf("total = %v", data["total"])
	}
}

func TestPreviewUsesFirstImageHit(t *testing.T) {
	withImage := testPainting("aic", "img")
	catalog := &stubCatalog{search: models.SearchResult{
		Paintings: []models.Painting{{ExternalID: "noimg", Museum: "aic", Title: "No Image"}, withImage},
		Total:     2,
	}}
	srv := newTestServer(t, testDeps{catalog: catalog})

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/explore/preview", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	previews := dataMap(t, envelope)["previews"].([]interface{})
	total := len(discover.Eras()) + len(discover.Themes()) + len(discover.Moods())
	if len(previews) != total {
		t.Fatalf("got %d previews, want %d", len(previews), total)
	}
	first := previews[0].(map[string]interface{})
	painting := first["painting"].(map[string]interface{})
	if painting["external_id"] != "img" {
		t.Errorf("representative = %v, want the image-bearing hit", painting["external_id"])
	}
}

// ---------------------------------------------------------------------------
// favorites / tags / journal

func TestFavoriteLifecycle(t *testing.T) {
	srv := newTestServer(t, testDeps{})

	// Add.
	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites", map[string]string{
		"museum":      "aic",
		"external_id": "27992",
		"title":       "A Sunday on La Grande Jatte",
		"artist":      "Georges Seurat",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	favID := dataMap(t, envelope)["id"].(string)

	// Duplicate add conflicts and reports the existing id.
	resp, envelope = doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites", map[string]string{
		"museum":      "aic",
		"external_id": "27992",
		"title":       "A Sunday on La Grande Jatte",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", resp.StatusCode)
	}
	if envelope.Error.Details["id"] != favID {
		t.Errorf("conflict id = %v, want %s", envelope.Error.Details["id"], favID)
	}

	// Tag it.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites/"+favID+"/tags",
		map[string]string{"tag": "Serene"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tag status = %d", resp.StatusCode)
	}

	// Journal it.
	resp, envelope = doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites/"+favID+"/entries",
		map[string]string{"entry_text": "Saw this at the Art Institute."})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("entry status = %d", resp.StatusCode)
	}
	entryID := dataMap(t, envelope)["id"].(string)

	// Read it back.
	resp, envelope = doJSON(t, http.MethodGet, srv.URL+"/api/v1/favorites/"+favID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	fav := dataMap(t, envelope)
	if fav["painting"].(map[string]interface{})["artist"] != "Georges Seurat" {
		t.Error("favorite snapshot lost the artist")
	}

	// Update and delete the entry.
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/v1/entries/"+entryID,
		map[string]string{"entry_text": "Revised impression."})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("entry update status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/entries/"+entryID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("entry delete status = %d", resp.StatusCode)
	}

	// Remove the favorite, then it is gone.
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/favorites/"+favID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status = %d", resp.StatusCode)
	}
	resp, envelope = doJSON(t, http.MethodGet, srv.URL+"/api/v1/favorites/"+favID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get-after-remove status = %d, want 404", resp.StatusCode)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

func TestFavoriteAddValidation(t *testing.T) {
	srv := newTestServer(t, testDeps{})

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites", map[string]string{
		"museum": "louvre", "external_id": "x",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFavoriteAddMalformedBody(t *testing.T) {
	srv := newTestServer(t, testDeps{})

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/favorites",
		strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFavoriteAddEnrichesFromCatalog(t *testing.T) {
	full := testPainting("aic", "27992")
	full.Title = "Catalog Title"
	catalog := &stubCatalog{paintings: map[string]*models.Painting{"aic:27992": &full}}
	j := newStubJournal()
	srv := newTestServer(t, testDeps{catalog: catalog, journal: j})

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites", map[string]string{
		"museum": "aic", "external_id": "27992",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	favID := dataMap(t, envelope)["id"].(string)
	if j.favorites[favID].Painting.Title != "Catalog Title" {
		t.Errorf("stored title = %q, want enrichment from catalog", j.favorites[favID].Painting.Title)
	}
}

func TestFavoriteListFilters(t *testing.T) {
	j := newStubJournal()
	aic := testPainting("aic", "1")
	smk := testPainting("smk", "2")
	if _, err := j.AddFavorite(context.Background(), &aic); err != nil {
		t.Fatal(err)
	}
	if _, err := j.AddFavorite(context.Background(), &smk); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, testDeps{journal: j})

	_, envelope := doJSON(t, http.MethodGet, srv.URL+"/api/v1/favorites?museum=smk", nil)
	data := dataMap(t, envelope)
	if data["total"].(float64) != 1 {
		t.Errorf("filtered total = %v, want 1", data["total"])
	}
}

func TestFavoriteRandomEmpty(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/favorites/random", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestTagValidation(t *testing.T) {
	j := newStubJournal()
	p := testPainting("aic", "1")
	favID, err := j.AddFavorite(context.Background(), &p)
	if err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, testDeps{journal: j})

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites/"+favID+"/tags",
		map[string]string{"tag": "a,b"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

// ---------------------------------------------------------------------------
// router plumbing

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/health/live", nil)
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, testDeps{})
	resp, err := http.Get(srv.URL + "/api/v1/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
