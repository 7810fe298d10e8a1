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

	json "github.com/goccy/go-json"

	"github.com/museadev/musea/internal/models"
)

// smkClient adapts the SMK (Statens Museum for Kunst, the National Gallery
// of Denmark) open API. https://www.smk.dk/en/article/smk-api/
//
// SMK has no dedicated detail endpoint; single objects are fetched through
// the search endpoint with an object_number filter.
type smkClient struct {
	t *transport
}

type smkTitle struct {
	Title    string `json:"title"`
	Language string `json:"language"`
}

type smkProduction struct {
	Creator   string `json:"creator"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

// smkNote tolerates the API's mixed note shapes: plain strings and
// {"note": ...} objects appear in the same array.
type smkNote struct {
	Text string
}

func (n *smkNote) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.Text = s
		return nil
	}
	var obj struct {
		Note string `json:"note"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unrecognized note shape; skip it rather than failing the record.
		n.Text = ""
		return nil
	}
	n.Text = obj.Note
	return nil
}

type smkItem struct {
	ObjectNumber   string          `json:"object_number"`
	Titles         []smkTitle      `json:"titles"`
	Production     []smkProduction `json:"production"`
	Techniques     []string        `json:"techniques"`
	DimensionsNote string          `json:"dimensions_note"`
	ImageThumbnail string          `json:"image_thumbnail"`
	ImageNative    string          `json:"image_native"`
	Notes          []smkNote       `json:"notes"`
	Acquisition    string          `json:"acquisition"`
	Collection     string          `json:"collection"`
	Rights         string          `json:"rights"`
}

type smkSearchResponse struct {
	Found int       `json:"found"`
	Items []smkItem `json:"items"`
}

func (c *smkClient) Name() string { return "smk" }

func (c *smkClient) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	params := url.Values{}
	params.Set("keys", query)
	params.Set("offset", strconv.Itoa((page-1)*limit))
	params.Set("rows", strconv.Itoa(limit))
	params.Set("filters", "[has_image:true]")

	var resp smkSearchResponse
	if err := c.t.getJSON(ctx, "/art/search/", params, "smk_search", &resp); err != nil {
		return models.SearchResult{}, err
	}

	paintings := []models.Painting{}
	for i := range resp.Items {
		p := formatSMKPainting(&resp.Items[i])
		if p.HasImage() {
			paintings = append(paintings, p)
		}
	}

	return models.SearchResult{Paintings: paintings, Total: resp.Found, Page: page}, nil
}

func (c *smkClient) Get(ctx context.Context, externalID string) (*models.Painting, error) {
	params := url.Values{}
	params.Set("keys", "*")
	params.Set("filters", "[object_number:"+externalID+"]")
	params.Set("rows", "1")

	var resp smkSearchResponse
	if err := c.t.getJSON(ctx, "/art/search/", params, "smk_artwork", &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	p := formatSMKPainting(&resp.Items[0])
	return &p, nil
}

func formatSMKPainting(item *smkItem) models.Painting {
	// Prefer the English title, falling back to the first one present.
	title := "Untitled"
	for _, t := range item.Titles {
		if t.Title == "" {
			continue
		}
		if t.Language == "en" {
			title = t.Title
			break
		}
		if title == "Untitled" {
			title = t.Title
		}
	}

	artist := models.UnknownArtist
	var dateDisplay string
	if len(item.Production) > 0 {
		prod := item.Production[0]
		if prod.Creator != "" {
			artist = prod.Creator
		}
		start := yearOf(prod.DateStart)
		end := yearOf(prod.DateEnd)
		switch {
		case start != "" && end != "" && start != end:
			dateDisplay = start + "-" + end
		case start != "":
			dateDisplay = start
		}
	}

	imageURL := item.ImageNative
	if imageURL == "" && item.ImageThumbnail != "" {
		imageURL = strings.ReplaceAll(item.ImageThumbnail, "/thumb/", "/native/")
	}

	description := ""
	for _, note := range item.Notes {
		if note.Text != "" {
			description = note.Text
			break
		}
	}

	var museumURL string
	if item.ObjectNumber != "" {
		museumURL = "https://open.smk.dk/artwork/image/" + item.ObjectNumber
	}

	p := models.Painting{
		ExternalID:  item.ObjectNumber,
		Museum:      "smk",
		MuseumName:  "SMK - National Gallery of Denmark",
		Title:       title,
		Artist:      artist,
		DateDisplay: dateDisplay,
		Medium:      strings.Join(item.Techniques, ", "),
		Dimensions:  item.DimensionsNote,
		Description: stripHTML(description),
		ImageURL:    imageURL,
		ThumbURL:    item.ImageThumbnail,
		MuseumURL:   museumURL,
	}

	meta := map[string]string{}
	for k, v := range map[string]string{
		"acquisition": item.Acquisition,
		"collection":  item.Collection,
		"rights":      item.Rights,
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

// yearOf reduces SMK date values ("1660", "1660-01-01") to the year.
func yearOf(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}
