// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package museums

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/museadev/musea/internal/models"
)

// metClient adapts the Metropolitan Museum of Art open access API.
// https://metmuseum.github.io/
//
// The Met API is two-step: a search returns bare object IDs, and each object
// must be fetched individually. Search results are paginated over the ID
// list, so one search page costs up to limit+1 upstream calls (the response
// cache absorbs most of them in practice).
type metClient struct {
	t *transport
}

// metEuropeanPaintingsDept scopes searches to European Paintings.
const metEuropeanPaintingsDept = "11"

type metSearchResponse struct {
	Total     int     `json:"total"`
	ObjectIDs []int64 `json:"objectIDs"`
}

type metObject struct {
	ObjectID          int64  `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ArtistDisplayBio  string `json:"artistDisplayBio"`
	ObjectDate        string `json:"objectDate"`
	Medium            string `json:"medium"`
	Dimensions        string `json:"dimensions"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ObjectURL         string `json:"objectURL"`
	Department        string `json:"department"`
	Culture           string `json:"culture"`
	Period            string `json:"period"`
	Dynasty           string `json:"dynasty"`
	Classification    string `json:"classification"`
	CreditLine        string `json:"creditLine"`
}

func (c *metClient) Name() string { return "met" }

func (c *metClient) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hasImages", "true")
	params.Set("departmentId", metEuropeanPaintingsDept)

	var search metSearchResponse
	if err := c.t.getJSON(ctx, "/search", params, "met_search", &search); err != nil {
		return models.SearchResult{}, err
	}

	total := len(search.ObjectIDs)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	paintings := []models.Painting{}
	for _, id := range search.ObjectIDs[start:end] {
		p, err := c.Get(ctx, strconv.FormatInt(id, 10))
		if err != nil {
			// One bad object must not sink the whole page.
			c.t.logger.Debug().Err(err).Int64("object_id", id).Msg("failed to fetch object")
			continue
		}
		if p != nil && p.HasImage() {
			paintings = append(paintings, *p)
		}
	}

	return models.SearchResult{Paintings: paintings, Total: total, Page: page}, nil
}

func (c *metClient) Get(ctx context.Context, externalID string) (*models.Painting, error) {
	var obj metObject
	if err := c.t.getJSON(ctx, "/objects/"+url.PathEscape(externalID), nil, "met_object", &obj); err != nil {
		return nil, err
	}
	if obj.ObjectID == 0 {
		return nil, nil
	}
	p := formatMetPainting(&obj)
	return &p, nil
}

func formatMetPainting(obj *metObject) models.Painting {
	artist := obj.ArtistDisplayName
	if artist == "" {
		artist = models.UnknownArtist
	}
	title := obj.Title
	if title == "" {
		title = "Untitled"
	}

	// The Met API carries no curatorial description; assemble one from the
	// attribution fields.
	var parts []string
	if obj.ArtistDisplayBio != "" {
		parts = append(parts, obj.ArtistDisplayBio+".")
	}
	if obj.Culture != "" {
		parts = append(parts, "Culture: "+obj.Culture+".")
	}
	if obj.Period != "" {
		parts = append(parts, "Period: "+obj.Period+".")
	}
	if obj.Classification != "" {
		parts = append(parts, "Classification: "+obj.Classification+".")
	}
	if obj.CreditLine != "" {
		parts = append(parts, obj.CreditLine+".")
	}

	p := models.Painting{
		ExternalID:  strconv.FormatInt(obj.ObjectID, 10),
		Museum:      "met",
		MuseumName:  "The Metropolitan Museum of Art",
		Title:       title,
		Artist:      artist,
		DateDisplay: obj.ObjectDate,
		Medium:      obj.Medium,
		Dimensions:  obj.Dimensions,
		Description: strings.Join(parts, " "),
		ImageURL:    obj.PrimaryImage,
		ThumbURL:    obj.PrimaryImageSmall,
		MuseumURL:   obj.ObjectURL,
	}

	meta := map[string]string{}
	for k, v := range map[string]string{
		"department": obj.Department,
		"culture":    obj.Culture,
		"period":     obj.Period,
		"dynasty":    obj.Dynasty,
		"creditLine": obj.CreditLine,
	} {
		if v != "" {
			meta[k] = v
		}
	}
	if len(meta) > 0 {
		p.Metadata = meta
	}
	return p
}
