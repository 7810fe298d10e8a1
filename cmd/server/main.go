// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Command server runs the Musea API: the local painting catalog, the museum
// harvest pipeline, and the HTTP discovery/journal endpoints, all under one
// supervision tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/museadev/musea/internal/api"
	"github.com/museadev/musea/internal/cache"
	"github.com/museadev/musea/internal/catalog"
	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/discover"
	"github.com/museadev/musea/internal/harvest"
	"github.com/museadev/musea/internal/journal"
	"github.com/museadev/musea/internal/logging"
	"github.com/museadev/musea/internal/museums"
	"github.com/museadev/musea/internal/supervisor"
)

func main() {
	harvestOnce := flag.Bool("harvest-once", false,
		"run a single synchronous harvest pass and exit")
	flag.Parse()

	if err := run(*harvestOnce); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(harvestOnce bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	responseCache, err := cache.Open(cfg.Cache.Path, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("open response cache: %w", err)
	}
	defer func() {
		if err := responseCache.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close response cache")
		}
	}()

	store, err := catalog.Open(&cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close catalog")
		}
	}()

	journalStore, err := journal.New(store.Conn(), logger)
	if err != nil {
		return fmt.Errorf("open journal store: %w", err)
	}

	museumClient := museums.New(&cfg.Museums, responseCache, logger)
	logger.Info().Strs("museums", museumClient.Museums()).Msg("museum clients registered")

	harvester := harvest.New(&cfg.Harvest, museumClient, store, logger)
	if harvestOnce {
		logger.Info().Msg("running one-shot harvest")
		return harvester.RunOnce(ctx)
	}

	engine, err := discover.NewEngine(&discover.Config{
		TermLimit:   cfg.Discover.TermLimit,
		Workers:     cfg.Discover.Workers,
		TermTimeout: cfg.Discover.TermTimeout,
	}, store, logger)
	if err != nil {
		return fmt.Errorf("create discovery engine: %w", err)
	}

	handler := api.NewHandler(engine, store, museumClient, journalStore, responseCache, cfg, logger)
	router := api.NewRouter(handler, &api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(supervisor.NewHTTPServerService(httpServer, addr, cfg.Server.ShutdownTimeout))
	if cfg.Harvest.Enabled {
		tree.AddHarvestService(harvester)
		logger.Info().Dur("interval", cfg.Harvest.Interval).Msg("harvester enabled")
	}

	logger.Info().Str("addr", addr).Msg("starting musea")
	err = tree.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("service did not stop in time")
		}
	}

	logger.Info().Msg("musea stopped")
	return nil
}
