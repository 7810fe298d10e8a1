// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/musea/config.yaml",
	"/etc/musea/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. Defaults are
// loaded first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5001,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Database: DatabaseConfig{
			Path:      "data/musea.duckdb",
			MaxMemory: "1GB",
			Threads:   0, // 0 = runtime.NumCPU()
		},
		Cache: CacheConfig{
			Path: "data/cache",
			TTL:  24 * time.Hour,
		},
		Museums: MuseumsConfig{
			AIC: MuseumConfig{
				Enabled:           true,
				BaseURL:           "https://api.artic.edu/api/v1",
				RequestsPerSecond: 2,
			},
			Met: MuseumConfig{
				Enabled:           true,
				BaseURL:           "https://collectionapi.metmuseum.org/public/collection/v1",
				RequestsPerSecond: 2,
			},
			Cleveland: MuseumConfig{
				Enabled:           true,
				BaseURL:           "https://openaccess-api.clevelandart.org/api",
				RequestsPerSecond: 2,
			},
			SMK: MuseumConfig{
				Enabled:           true,
				BaseURL:           "https://api.smk.dk/api/v1",
				RequestsPerSecond: 2,
			},
			Harvard: MuseumConfig{
				Enabled:           false, // Requires an API key
				BaseURL:           "https://api.harvardartmuseums.org",
				RequestsPerSecond: 2,
			},
			Timeout: 30 * time.Second,
		},
		Discover: DiscoverConfig{
			TermLimit:           200,
			Workers:             6,
			TermTimeout:         15 * time.Second,
			SuggestionThreshold: 3,
		},
		Harvest: HarvestConfig{
			Enabled:  false, // Opt-in: the catalog can also be populated manually
			Interval: 12 * time.Hour,
			MaxPages: 3,
			PageSize: 20,
			Terms:    nil,
		},
		API: APIConfig{
			DefaultPageSize: 12,
			MaxPageSize:     100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources
// (ENV > file > defaults) and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// SERVER_PORT -> server.port, MUSEUMS_HARVARD_API_KEY -> museums.harvard.api_key
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sectionPrefixes maps environment variable prefixes to koanf path roots.
// MUSEUMS_ vars nest one level deeper per museum.
var sectionPrefixes = []string{
	"SERVER_", "DATABASE_", "CACHE_", "DISCOVER_", "HARVEST_", "API_", "LOGGING_",
}

var museumPrefixes = []string{
	"MUSEUMS_AIC_", "MUSEUMS_MET_", "MUSEUMS_CLEVELAND_", "MUSEUMS_SMK_", "MUSEUMS_HARVARD_",
}

// envTransform maps a recognized environment variable name to its koanf
// path. Unrecognized variables return "" and are ignored so unrelated
// process environment never leaks into the configuration.
func envTransform(s string) string {
	for _, prefix := range museumPrefixes {
		if strings.HasPrefix(s, prefix) {
			parts := strings.SplitN(strings.ToLower(prefix), "_", 3)
			return parts[0] + "." + parts[1] + "." + strings.ToLower(strings.TrimPrefix(s, prefix))
		}
	}
	if strings.HasPrefix(s, "MUSEUMS_") {
		return "museums." + strings.ToLower(strings.TrimPrefix(s, "MUSEUMS_"))
	}
	for _, prefix := range sectionPrefixes {
		if strings.HasPrefix(s, prefix) {
			section := strings.ToLower(strings.TrimSuffix(prefix, "_"))
			return section + "." + strings.ToLower(strings.TrimPrefix(s, prefix))
		}
	}
	return ""
}
