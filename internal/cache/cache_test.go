// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package cache

import (
	"testing"
	"time"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open("", ttl)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return c
}

func TestSetGet(t *testing.T) {
	c := newTestCache(t, time.Minute)

	if err := c.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Errorf("Get = (%q, %v), want (v, true)", got, ok)
	}
}

func TestGetMiss(t *testing.T) {
	c := newTestCache(t, time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}

	stats := c.Stats()
	if stats.Misses != 1 || stats.Hits != 0 {
		t.Errorf("stats = %+v, want 1 miss, 0 hits", stats)
	}
}

func TestExpiry(t *testing.T) {
	c := newTestCache(t, 50*time.Millisecond)

	if err := c.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(120 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestKeyStability(t *testing.T) {
	a := Key("aic_search", "https://example.org/search", map[string]string{"q": "monet", "page": "1"})
	b := Key("aic_search", "https://example.org/search", map[string]string{"page": "1", "q": "monet"})
	if a != b {
		t.Errorf("param order changed key: %q != %q", a, b)
	}

	other := Key("aic_search", "https://example.org/search", map[string]string{"q": "degas", "page": "1"})
	if a == other {
		t.Error("different params produced identical key")
	}

	if !hasPrefix(a, "aic_search:") {
		t.Errorf("key missing prefix: %q", a)
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
