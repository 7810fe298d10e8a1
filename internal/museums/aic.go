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

// aicClient adapts the Art Institute of Chicago public API.
// https://api.artic.edu/docs/
type aicClient struct {
	t *transport
}

const aicSearchFields = "id,title,artist_title,date_display,medium_display," +
	"dimensions,thumbnail,image_id,artwork_type_title,style_title,description"

const aicDetailFields = aicSearchFields + ",provenance_text,publication_history,exhibition_history"

// defaultIIIFURL is used when a response omits its IIIF config block.
const defaultIIIFURL = "https://www.artic.edu/iiif/2"

type aicArtwork struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	ArtistTitle      string `json:"artist_title"`
	DateDisplay      string `json:"date_display"`
	MediumDisplay    string `json:"medium_display"`
	Dimensions       string `json:"dimensions"`
	ImageID          string `json:"image_id"`
	ArtworkTypeTitle string `json:"artwork_type_title"`
	StyleTitle       string `json:"style_title"`
	Description      string `json:"description"`
	ProvenanceText   string `json:"provenance_text"`
	PublicationHist  string `json:"publication_history"`
	ExhibitionHist   string `json:"exhibition_history"`
}

type aicConfig struct {
	IIIFURL string `json:"iiif_url"`
}

type aicSearchResponse struct {
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
	Data   []aicArtwork `json:"data"`
	Config aicConfig    `json:"config"`
}

type aicDetailResponse struct {
	Data   aicArtwork `json:"data"`
	Config aicConfig  `json:"config"`
}

func (c *aicClient) Name() string { return "aic" }

func (c *aicClient) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("query[term][is_public_domain]", "true")
	params.Set("fields", aicSearchFields)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var resp aicSearchResponse
	if err := c.t.getJSON(ctx, "/artworks/search", params, "aic_search", &resp); err != nil {
		return models.SearchResult{}, err
	}

	iiifURL := resp.Config.IIIFURL
	if iiifURL == "" {
		iiifURL = defaultIIIFURL
	}

	paintings := []models.Painting{}
	for i := range resp.Data {
		// Records without an image are useless for the gallery views.
		if resp.Data[i].ImageID == "" {
			continue
		}
		paintings = append(paintings, formatAICPainting(&resp.Data[i], iiifURL))
	}

	return models.SearchResult{Paintings: paintings, Total: resp.Pagination.Total, Page: page}, nil
}

func (c *aicClient) Get(ctx context.Context, externalID string) (*models.Painting, error) {
	params := url.Values{}
	params.Set("fields", aicDetailFields)

	var resp aicDetailResponse
	if err := c.t.getJSON(ctx, "/artworks/"+url.PathEscape(externalID), params, "aic_artwork", &resp); err != nil {
		return nil, err
	}
	if resp.Data.ID == 0 {
		return nil, nil
	}

	iiifURL := resp.Config.IIIFURL
	if iiifURL == "" {
		iiifURL = defaultIIIFURL
	}
	p := formatAICPainting(&resp.Data, iiifURL)
	return &p, nil
}

func formatAICPainting(item *aicArtwork, iiifURL string) models.Painting {
	description := stripHTML(item.Description)
	if description == "" {
		var parts []string
		if item.StyleTitle != "" {
			parts = append(parts, fmt.Sprintf("Style: %s.", item.StyleTitle))
		}
		if item.ArtworkTypeTitle != "" {
			parts = append(parts, fmt.Sprintf("Type: %s.", item.ArtworkTypeTitle))
		}
		description = strings.Join(parts, " ")
	}

	artist := item.ArtistTitle
	if artist == "" {
		artist = models.UnknownArtist
	}
	title := item.Title
	if title == "" {
		title = "Untitled"
	}

	var imageURL, thumbURL string
	if item.ImageID != "" {
		imageURL = iiifResize(iiifURL, item.ImageID, 1686)
		thumbURL = iiifResize(iiifURL, item.ImageID, 400)
	}

	p := models.Painting{
		ExternalID:  strconv.FormatInt(item.ID, 10),
		Museum:      "aic",
		MuseumName:  "Art Institute of Chicago",
		Title:       title,
		Artist:      artist,
		DateDisplay: item.DateDisplay,
		Medium:      item.MediumDisplay,
		Dimensions:  item.Dimensions,
		Description: description,
		ImageURL:    imageURL,
		ThumbURL:    thumbURL,
		MuseumURL:   fmt.Sprintf("https://www.artic.edu/artworks/%d", item.ID),
	}

	meta := map[string]string{}
	if item.StyleTitle != "" {
		meta["style"] = item.StyleTitle
	}
	if item.ArtworkTypeTitle != "" {
		meta["artwork_type"] = item.ArtworkTypeTitle
	}
	if v := stripHTML(item.ProvenanceText); v != "" {
		meta["provenance"] = v
	}
	if v := stripHTML(item.PublicationHist); v != "" {
		meta["publications"] = v
	}
	if v := stripHTML(item.ExhibitionHist); v != "" {
		meta["exhibitions"] = v
	}
	if len(meta) > 0 {
		p.Metadata = meta
	}
	return p
}

// iiifResize builds a IIIF Image API URL constrained to the given width.
func iiifResize(iiifURL, imageID string, width int) string {
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", iiifURL, imageID, width)
}
