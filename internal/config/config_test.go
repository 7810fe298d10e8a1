// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package config

import (
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Port != 5001 {
		t.Errorf("default port = %d, want 5001", cfg.Server.Port)
	}
	if cfg.Discover.TermLimit != 200 {
		t.Errorf("default term limit = %d, want 200", cfg.Discover.TermLimit)
	}
	if !cfg.Museums.AIC.Enabled {
		t.Error("AIC should be enabled by default")
	}
	if cfg.Museums.Harvard.Enabled {
		t.Error("Harvard should be disabled by default (needs API key)")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DISCOVER_WORKERS", "4")
	t.Setenv("MUSEUMS_HARVARD_ENABLED", "true")
	t.Setenv("MUSEUMS_HARVARD_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Discover.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Discover.Workers)
	}
	if !cfg.Museums.Harvard.Enabled || cfg.Museums.Harvard.APIKey != "test-key" {
		t.Errorf("harvard override not applied: %+v", cfg.Museums.Harvard)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"SERVER_RATE_LIMIT_REQS", "server.rate_limit_reqs"},
		{"MUSEUMS_HARVARD_API_KEY", "museums.harvard.api_key"},
		{"MUSEUMS_TIMEOUT", "museums.timeout"},
		{"HARVEST_MAX_PAGES", "harvest.max_pages"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero page size", func(c *Config) { c.API.DefaultPageSize = 0 }},
		{"max below default", func(c *Config) { c.API.MaxPageSize = c.API.DefaultPageSize - 1 }},
		{"zero term limit", func(c *Config) { c.Discover.TermLimit = 0 }},
		{"too many workers", func(c *Config) { c.Discover.Workers = 100 }},
		{"zero term timeout", func(c *Config) { c.Discover.TermTimeout = 0 }},
		{"harvest interval too short", func(c *Config) {
			c.Harvest.Enabled = true
			c.Harvest.Interval = time.Second
		}},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }},
		{"harvard without key", func(c *Config) {
			c.Museums.Harvard.Enabled = true
			c.Museums.Harvard.APIKey = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
