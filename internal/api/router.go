// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the middleware stack and route table.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router around the given handler set.
func NewRouter(handler *Handler, mwConfig *MiddlewareConfig) *Router {
	return &Router{
		handler:    handler,
		middleware: NewMiddleware(mwConfig),
	}
}

// Routes builds the http.Handler serving the full API.
func (rt *Router) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(rt.middleware.CORS())

	r.Route("/api/v1", func(r chi.Router) {
		// Health endpoints get a permissive limit so monitoring is never throttled.
		r.Route("/health", func(r chi.Router) {
			r.Use(rt.middleware.RateLimitHealth())
			r.Get("/live", rt.handler.HealthLive)
			r.Get("/ready", rt.handler.HealthReady)
		})

		// Read endpoints.
		r.Group(func(r chi.Router) {
			r.Use(rt.middleware.RateLimit())
			r.Use(PrometheusMetrics)

			r.Get("/search", rt.handler.Search)
			r.Get("/stats", rt.handler.Stats)
			r.Get("/paintings/{museum}/{id}", rt.handler.PaintingDetail)

			r.Route("/explore", func(r chi.Router) {
				r.Get("/categories", rt.handler.Categories)
				r.Get("/preview", rt.handler.Preview)
				r.Get("/surprise", rt.handler.Surprise)
				r.Get("/artist/{name}", rt.handler.ArtistWorks)
				r.Get("/{kind}/{key}", rt.handler.CategoryPage)
			})

			r.Get("/favorites", rt.handler.FavoriteList)
			r.Get("/favorites/random", rt.handler.FavoriteRandom)
			r.Get("/favorites/{id}", rt.handler.FavoriteGet)
			r.Get("/favorites/{id}/entries", rt.handler.EntryList)
			r.Get("/tags", rt.handler.TagList)
		})

		// Write endpoints carry a stricter rate limit.
		r.Group(func(r chi.Router) {
			r.Use(rt.middleware.RateLimitWrite())
			r.Use(PrometheusMetrics)

			r.Post("/favorites", rt.handler.FavoriteAdd)
			r.Delete("/favorites/{id}", rt.handler.FavoriteRemove)
			r.Post("/favorites/{id}/tags", rt.handler.TagAdd)
			r.Delete("/favorites/{id}/tags/{tag}", rt.handler.TagRemove)
			r.Post("/favorites/{id}/entries", rt.handler.EntryAdd)
			r.Put("/entries/{id}", rt.handler.EntryUpdate)
			r.Delete("/entries/{id}", rt.handler.EntryDelete)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
