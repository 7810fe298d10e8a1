// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package museums

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/museadev/musea/internal/models"
)

// harvardClient adapts the Harvard Art Museums API. Unlike the other
// museums, Harvard requires an API key; the adapter is only registered when
// one is configured. https://harvardartmuseums.org/collections/api
type harvardClient struct {
	t      *transport
	apiKey string
}

type harvardRecord struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Dated       string `json:"dated"`
	Medium      string `json:"medium"`
	Dimensions  string `json:"dimensions"`
	Description string `json:"description"`
	Commentary  string `json:"commentary"`
	PrimaryIMG  string `json:"primaryimageurl"`
	URL         string `json:"url"`
	Department  string `json:"department"`
	Culture     string `json:"culture"`
	CreditLine  string `json:"creditline"`
	Accession   string `json:"accessionumber"`
	People      []struct {
		Name string `json:"name"`
	} `json:"people"`
}

type harvardSearchResponse struct {
	Info struct {
		TotalRecords int `json:"totalrecords"`
	} `json:"info"`
	Records []harvardRecord `json:"records"`
}

func (c *harvardClient) Name() string { return "harvard" }

func (c *harvardClient) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", query)
	params.Set("classification", "Paintings")
	params.Set("hasimage", "1")
	params.Set("size", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp harvardSearchResponse
	if err := c.t.getJSON(ctx, "/object", params, "harvard_search", &resp); err != nil {
		return models.SearchResult{}, err
	}

	paintings := []models.Painting{}
	for i := range resp.Records {
		p := formatHarvardPainting(&resp.Records[i])
		if p.HasImage() {
			paintings = append(paintings, p)
		}
	}

	return models.SearchResult{Paintings: paintings, Total: resp.Info.TotalRecords, Page: page}, nil
}

func (c *harvardClient) Get(ctx context.Context, externalID string) (*models.Painting, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)

	var record harvardRecord
	if err := c.t.getJSON(ctx, "/object/"+url.PathEscape(externalID), params, "harvard_artwork", &record); err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	p := formatHarvardPainting(&record)
	return &p, nil
}

func formatHarvardPainting(item *harvardRecord) models.Painting {
	artist := models.UnknownArtist
	if len(item.People) > 0 && item.People[0].Name != "" {
		artist = item.People[0].Name
	}
	title := item.Title
	if title == "" {
		title = "Untitled"
	}

	description := item.Description
	if description == "" {
		description = item.Commentary
	}

	museumURL := item.URL
	if museumURL == "" {
		museumURL = fmt.Sprintf("https://harvardartmuseums.org/collections/object/%d", item.ID)
	}

	p := models.Painting{
		ExternalID:  strconv.FormatInt(item.ID, 10),
		Museum:      "harvard",
		MuseumName:  "Harvard Art Museums",
		Title:       title,
		Artist:      artist,
		DateDisplay: item.Dated,
		Medium:      item.Medium,
		Dimensions:  item.Dimensions,
		Description: stripHTML(description),
		ImageURL:    item.PrimaryIMG,
		ThumbURL:    item.PrimaryIMG,
		MuseumURL:   museumURL,
	}

	meta := map[string]string{}
	for k, v := range map[string]string{
		"department":       item.Department,
		"culture":          item.Culture,
		"creditLine":       item.CreditLine,
		"accession_number": item.Accession,
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
