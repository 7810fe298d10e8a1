// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package museums adapts the heterogeneous museum collection APIs to the
// normalized Painting model. Each adapter owns its upstream schema; nothing
// downstream needs to know which museum a record came from.
package museums

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/cache"
	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/models"
)

// adapter is one museum collection API.
type adapter interface {
	Name() string
	Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error)
	Get(ctx context.Context, externalID string) (*models.Painting, error)
}

// Client fans searches out across the configured museum APIs.
// It is safe for concurrent use.
type Client struct {
	adapters map[string]adapter
	order    []string
	logger   zerolog.Logger
}

// New builds the museum client from configuration. Disabled museums get no
// adapter; Harvard additionally requires an API key. The cache may be nil,
// in which case every request goes upstream.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *config.MuseumsConfig, store *cache.Cache, logger zerolog.Logger) *Client {
	c := &Client{
		adapters: make(map[string]adapter),
		logger:   logger.With().Str("component", "museums").Logger(),
	}

	register := func(name string, mc *config.MuseumConfig, build func(t *transport) adapter) {
		if !mc.Enabled {
			return
		}
		t := newTransport(name, mc, cfg.Timeout, store, c.logger)
		c.adapters[name] = build(t)
		c.order = append(c.order, name)
	}

	register("aic", &cfg.AIC, func(t *transport) adapter { return &aicClient{t: t} })
	register("met", &cfg.Met, func(t *transport) adapter { return &metClient{t: t} })
	register("cleveland", &cfg.Cleveland, func(t *transport) adapter { return &clevelandClient{t: t} })
	register("smk", &cfg.SMK, func(t *transport) adapter { return &smkClient{t: t} })
	if cfg.Harvard.Enabled && cfg.Harvard.APIKey != "" {
		register("harvard", &cfg.Harvard, func(t *transport) adapter {
			return &harvardClient{t: t, apiKey: cfg.Harvard.APIKey}
		})
	}

	c.logger.Info().Strs("museums", c.order).Msg("museum adapters registered")
	return c
}

// Museums lists the registered museum identifiers in registration order.
func (c *Client) Museums() []string {
	return append([]string{}, c.order...)
}

// SearchAll searches one museum when museum is non-empty, otherwise all
// registered museums in parallel with the limit split between them. A single
// museum failing only removes its contribution.
func (c *Client) SearchAll(ctx context.Context, query, museum string, page, limit int) (models.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	if museum != "" {
		a, ok := c.adapters[museum]
		if !ok {
			return models.SearchResult{Paintings: []models.Painting{}, Page: page},
				fmt.Errorf("unknown museum %q", museum)
		}
		return a.Search(ctx, query, page, limit)
	}

	if len(c.order) == 0 {
		return models.SearchResult{Paintings: []models.Painting{}, Page: page}, nil
	}

	perMuseum := limit / len(c.order)
	if perMuseum < 1 {
		perMuseum = 1
	}

	results := make([]models.SearchResult, len(c.order))
	var wg sync.WaitGroup
	for i, name := range c.order {
		wg.Add(1)
		go func(i int, a adapter) {
			defer wg.Done()
			res, err := a.Search(ctx, query, page, perMuseum)
			if err != nil {
				c.logger.Warn().Err(err).Str("museum", a.Name()).Str("query", query).
					Msg("museum search failed, dropping its contribution")
				return
			}
			results[i] = res
		}(i, c.adapters[name])
	}
	wg.Wait()

	merged := models.SearchResult{Paintings: []models.Painting{}, Page: page}
	for _, res := range results {
		merged.Paintings = append(merged.Paintings, res.Paintings...)
		merged.Total += res.Total
	}
	return merged, nil
}

// GetPainting fetches one painting straight from its museum's API.
func (c *Client) GetPainting(ctx context.Context, museum, externalID string) (*models.Painting, error) {
	a, ok := c.adapters[museum]
	if !ok {
		return nil, fmt.Errorf("unknown museum %q", museum)
	}
	return a.Get(ctx, externalID)
}

// flattenParams converts url.Values to the cache key's parameter map.
// Multi-valued parameters are joined; museum APIs never use them.
func flattenParams(params url.Values) map[string]string {
	if len(params) == 0 {
		return nil
	}
	flat := make(map[string]string, len(params))
	for k, vs := range params {
		flat[k] = strings.Join(vs, ",")
	}
	return flat
}

// stripHTML removes markup from museum-supplied description text.
// Descriptions arrive as HTML fragments; only the text is kept.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	out := b.String()
	out = strings.ReplaceAll(out, "&amp;", "&")
	out = strings.ReplaceAll(out, "&lt;", "<")
	out = strings.ReplaceAll(out, "&gt;", ">")
	out = strings.ReplaceAll(out, "&quot;", `"`)
	out = strings.ReplaceAll(out, "&#39;", "'")
	out = strings.ReplaceAll(out, "&nbsp;", " ")
	return strings.TrimSpace(out)
}
