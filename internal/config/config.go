// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package config provides layered configuration loading for Musea using
// Koanf v2. Settings are resolved in order of increasing priority:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables (SERVER_PORT, MUSEUMS_HARVARD_API_KEY, ...)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	Museums  MuseumsConfig  `koanf:"museums"`
	Discover DiscoverConfig `koanf:"discover"`
	Harvest  HarvestConfig  `koanf:"harvest"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// DatabaseConfig configures the DuckDB store backing the painting catalog
// and the favorites/journal tables.
type DatabaseConfig struct {
	// Path is the DuckDB database file. Empty means in-memory (tests).
	Path string `koanf:"path"`

	// MaxMemory is DuckDB's memory limit, e.g. "1GB".
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count. 0 means runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// CacheConfig configures the badger-backed upstream response cache.
type CacheConfig struct {
	// Path is the badger directory. Empty means in-memory.
	Path string `koanf:"path"`

	// TTL is how long museum API responses stay cached.
	TTL time.Duration `koanf:"ttl"`
}

// MuseumConfig configures one upstream museum API client.
type MuseumConfig struct {
	Enabled bool   `koanf:"enabled"`
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`

	// RequestsPerSecond bounds the client-side rate limit.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
}

// MuseumsConfig groups per-museum client settings plus shared limits.
type MuseumsConfig struct {
	AIC       MuseumConfig  `koanf:"aic"`
	Met       MuseumConfig  `koanf:"met"`
	Cleveland MuseumConfig  `koanf:"cleveland"`
	SMK       MuseumConfig  `koanf:"smk"`
	Harvard   MuseumConfig  `koanf:"harvard"`
	Timeout   time.Duration `koanf:"timeout"`
}

// DiscoverConfig tunes the category aggregation engine.
type DiscoverConfig struct {
	// TermLimit is the per-term search limit during aggregation. High
	// enough that no single term's contribution is truncated.
	TermLimit int `koanf:"term_limit"`

	// Workers bounds concurrent per-term searches within one aggregation.
	Workers int `koanf:"workers"`

	// TermTimeout is the per-term search deadline. A slow term search
	// contributes nothing rather than stalling the aggregation.
	TermTimeout time.Duration `koanf:"term_timeout"`

	// SuggestionThreshold is the result count below which a plain-text
	// search gets a spelling suggestion attached.
	SuggestionThreshold int `koanf:"suggestion_threshold"`
}

// HarvestConfig configures the background catalog harvester.
type HarvestConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`

	// MaxPages bounds pages fetched per term per museum in one run.
	MaxPages int `koanf:"max_pages"`

	// PageSize is the per-page fetch size during harvesting.
	PageSize int `koanf:"page_size"`

	// Terms are the search terms walked on each harvest run. Empty means
	// the built-in category search terms.
	Terms []string `koanf:"terms"`
}

// APIConfig holds pagination bounds for list endpoints.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Discover.TermLimit < 1 {
		return fmt.Errorf("discover.term_limit must be >= 1, got %d", c.Discover.TermLimit)
	}
	if c.Discover.Workers < 1 || c.Discover.Workers > 64 {
		return fmt.Errorf("discover.workers must be 1-64, got %d", c.Discover.Workers)
	}
	if c.Discover.TermTimeout <= 0 {
		return fmt.Errorf("discover.term_timeout must be positive, got %s", c.Discover.TermTimeout)
	}
	if c.Harvest.Enabled {
		if c.Harvest.Interval < time.Minute {
			return fmt.Errorf("harvest.interval must be >= 1m, got %s", c.Harvest.Interval)
		}
		if c.Harvest.MaxPages < 1 {
			return fmt.Errorf("harvest.max_pages must be >= 1, got %d", c.Harvest.MaxPages)
		}
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Museums.Harvard.Enabled && c.Museums.Harvard.APIKey == "" {
		return fmt.Errorf("museums.harvard.api_key is required when the Harvard client is enabled")
	}
	return nil
}
