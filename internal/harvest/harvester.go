// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package harvest periodically pulls paintings from the museum APIs into the
// local catalog so aggregation and search can run against local data instead
// of fanning out to five upstreams per request.
//
// Each cycle publishes one task per (museum, term, page) onto an in-process
// Watermill channel; a pool of consumers executes the searches and upserts
// the results. The queue decouples task production from upstream latency so a
// slow museum never stalls the whole cycle.
package harvest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/discover"
	"github.com/museadev/musea/internal/metrics"
	"github.com/museadev/musea/internal/models"
)

// taskTopic carries harvest tasks between the scheduler and the consumers.
const taskTopic = "harvest.tasks"

// consumerCount bounds concurrent upstream searches per harvester.
const consumerCount = 3

// Searcher is the museum fan-out capability the harvester pulls from.
type Searcher interface {
	SearchAll(ctx context.Context, query, museum string, page, limit int) (models.SearchResult, error)
	Museums() []string
}

// Sink receives harvested paintings, implemented by the catalog store.
type Sink interface {
	Upsert(ctx context.Context, paintings []models.Painting) (int, error)
}

// task is one unit of harvest work.
type task struct {
	Museum string `json:"museum"`
	Term   string `json:"term"`
	Page   int    `json:"page"`
}

// Harvester runs the periodic harvest pipeline. It implements
// suture.Service; run it under the supervisor tree.
type Harvester struct {
	cfg    *config.HarvestConfig
	source Searcher
	sink   Sink
	pubsub *gochannel.GoChannel
	logger zerolog.Logger
	terms  []string
}

// New creates a harvester. When no terms are configured, the category
// registry's era artists are harvested, which covers every era page the
// explore views can request.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *config.HarvestConfig, source Searcher, sink Sink, logger zerolog.Logger) *Harvester {
	log := logger.With().Str("component", "harvest").Logger()

	terms := cfg.Terms
	if len(terms) == 0 {
		terms = defaultTerms()
	}

	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermillLogger{logger: log},
	)

	return &Harvester{
		cfg:    cfg,
		source: source,
		sink:   sink,
		pubsub: pubsub,
		logger: log,
		terms:  terms,
	}
}

// String names the service in supervisor logs.
func (h *Harvester) String() string { return "harvester" }

// Serve runs harvest cycles until the context is canceled: one immediately,
// then one per configured interval.
func (h *Harvester) Serve(ctx context.Context) error {
	msgs, err := h.pubsub.Subscribe(ctx, taskTopic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to harvest tasks: %w", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < consumerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.consume(ctx, msgs)
		}()
	}

	h.runCycle(ctx)

	ticker := time.NewTicker(h.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.runCycle(ctx)
		case <-ctx.Done():
			if err := h.pubsub.Close(); err != nil {
				h.logger.Warn().Err(err).Msg("failed to close harvest pubsub")
			}
			wg.Wait()
			return ctx.Err()
		}
	}
}

// RunOnce executes a single synchronous harvest pass without the queue,
// used by the CLI's one-shot mode and by tests.
func (h *Harvester) RunOnce(ctx context.Context) error {
	start := time.Now()
	metrics.HarvestRuns.Inc()

	var firstErr error
	for _, museum := range h.source.Museums() {
		for _, term := range h.terms {
			for page := 1; page <= h.cfg.MaxPages; page++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if err := h.execute(ctx, task{Museum: museum, Term: term, Page: page}); err != nil {
					if firstErr == nil {
						firstErr = err
					}
				}
			}
		}
	}

	metrics.HarvestDuration.Observe(time.Since(start).Seconds())
	return firstErr
}

// runCycle publishes one cycle's worth of tasks onto the queue.
func (h *Harvester) runCycle(ctx context.Context) {
	metrics.HarvestRuns.Inc()

	museums := h.source.Museums()
	published := 0
	for _, museum := range museums {
		for _, term := range h.terms {
			for page := 1; page <= h.cfg.MaxPages; page++ {
				if ctx.Err() != nil {
					return
				}
				payload, err := json.Marshal(task{Museum: museum, Term: term, Page: page})
				if err != nil {
					h.logger.Error().Err(err).Msg("failed to encode harvest task")
					continue
				}
				msg := message.NewMessage(watermill.NewUUID(), payload)
				if err := h.pubsub.Publish(taskTopic, msg); err != nil {
					h.logger.Warn().Err(err).Msg("failed to publish harvest task")
					continue
				}
				published++
			}
		}
	}

	h.logger.Info().
		Int("tasks", published).
		Int("museums", len(museums)).
		Int("terms", len(h.terms)).
		Msg("harvest cycle scheduled")
}

// consume drains the task channel until it closes.
func (h *Harvester) consume(ctx context.Context, msgs <-chan *message.Message) {
	for msg := range msgs {
		var t task
		if err := json.Unmarshal(msg.Payload, &t); err != nil {
			h.logger.Error().Err(err).Str("message_id", msg.UUID).Msg("malformed harvest task")
			msg.Ack()
			continue
		}

		if err := h.execute(ctx, t); err != nil {
			h.logger.Warn().Err(err).
				Str("museum", t.Museum).
				Str("term", t.Term).
				Int("page", t.Page).
				Msg("harvest task failed")
		}
		// Failed tasks are acked too: the next cycle retries the same
		// (museum, term, page) space, so redelivery would only pile on a
		// struggling upstream.
		msg.Ack()
	}
}

// execute performs one task: search upstream, store the results.
func (h *Harvester) execute(ctx context.Context, t task) error {
	res, err := h.source.SearchAll(ctx, t.Term, t.Museum, t.Page, h.cfg.PageSize)
	if err != nil {
		metrics.HarvestErrors.WithLabelValues(t.Museum).Inc()
		return fmt.Errorf("search %s for %q page %d: %w", t.Museum, t.Term, t.Page, err)
	}
	if len(res.Paintings) == 0 {
		return nil
	}

	n, err := h.sink.Upsert(ctx, res.Paintings)
	if err != nil {
		metrics.HarvestErrors.WithLabelValues(t.Museum).Inc()
		return fmt.Errorf("store %d paintings from %s: %w", len(res.Paintings), t.Museum, err)
	}

	metrics.HarvestPaintingsStored.WithLabelValues(t.Museum).Add(float64(n))
	h.logger.Debug().
		Str("museum", t.Museum).
		Str("term", t.Term).
		Int("page", t.Page).
		Int("stored", n).
		Msg("harvest task complete")
	return nil
}

// defaultTerms unions the era artists from the category registry.
func defaultTerms() []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, era := range discover.Eras() {
		for _, artist := range era.Artists {
			if _, dup := seen[artist]; dup {
				continue
			}
			seen[artist] = struct{}{}
			terms = append(terms, artist)
		}
	}
	return terms
}
