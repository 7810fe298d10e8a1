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
	"strings"

	"github.com/museadev/musea/internal/models"
)

// clevelandClient adapts the Cleveland Museum of Art open access API.
// https://openaccess-api.clevelandart.org/
type clevelandClient struct {
	t *transport
}

type clevelandArtwork struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CreationDate string `json:"creation_date"`
	Technique    string `json:"technique"`
	Measurements string `json:"measurements"`
	Description  string `json:"description"`
	FunFact      string `json:"fun_fact"`
	URL          string `json:"url"`
	Department   string `json:"department"`
	CreditLine   string `json:"creditline"`
	Accession    string `json:"accession_number"`
	Creators     []struct {
		Description string `json:"description"`
	} `json:"creators"`
	Images struct {
		Web struct {
			URL string `json:"url"`
		} `json:"web"`
	} `json:"images"`
}

type clevelandSearchResponse struct {
	Info struct {
		Total int `json:"total"`
	} `json:"info"`
	Data []clevelandArtwork `json:"data"`
}

type clevelandDetailResponse struct {
	Data clevelandArtwork `json:"data"`
}

func (c *clevelandClient) Name() string { return "cleveland" }

func (c *clevelandClient) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("has_image", "1")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("skip", strconv.Itoa((page-1)*limit))

	var resp clevelandSearchResponse
	if err := c.t.getJSON(ctx, "/artworks/", params, "cleveland_search", &resp); err != nil {
		return models.SearchResult{}, err
	}

	paintings := []models.Painting{}
	for i := range resp.Data {
		p := formatClevelandPainting(&resp.Data[i])
		if p.HasImage() {
			paintings = append(paintings, p)
		}
	}

	return models.SearchResult{Paintings: paintings, Total: resp.Info.Total, Page: page}, nil
}

func (c *clevelandClient) Get(ctx context.Context, externalID string) (*models.Painting, error) {
	var resp clevelandDetailResponse
	if err := c.t.getJSON(ctx, "/artworks/"+url.PathEscape(externalID), nil, "cleveland_artwork", &resp); err != nil {
		return nil, err
	}
	if resp.Data.ID == 0 {
		return nil, nil
	}
	p := formatClevelandPainting(&resp.Data)
	return &p, nil
}

func formatClevelandPainting(item *clevelandArtwork) models.Painting {
	artist := models.UnknownArtist
	if len(item.Creators) > 0 && item.Creators[0].Description != "" {
		artist = item.Creators[0].Description
	}
	title := item.Title
	if title == "" {
		title = "Untitled"
	}

	var parts []string
	if item.Description != "" {
		parts = append(parts, stripHTML(item.Description))
	}
	if item.FunFact != "" {
		parts = append(parts, item.FunFact)
	}

	museumURL := item.URL
	if museumURL == "" {
		museumURL = fmt.Sprintf("https://www.clevelandart.org/art/%d", item.ID)
	}

	imageURL := item.Images.Web.URL

	p := models.Painting{
		ExternalID:  strconv.FormatInt(item.ID, 10),
		Museum:      "cleveland",
		MuseumName:  "Cleveland Museum of Art",
		Title:       title,
		Artist:      artist,
		DateDisplay: item.CreationDate,
		Medium:      item.Technique,
		Dimensions:  item.Measurements,
		Description: strings.Join(parts, " "),
		ImageURL:    imageURL,
		ThumbURL:    imageURL,
		MuseumURL:   museumURL,
	}

	meta := map[string]string{}
	for k, v := range map[string]string{
		"department":       item.Department,
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
