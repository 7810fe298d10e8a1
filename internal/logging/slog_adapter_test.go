// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandlerWritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(zl))
	slogger.Info("service started", "name", "harvest", "restarts", int64(2))

	out := buf.String()
	if !strings.Contains(out, `"message":"service started"`) {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, `"name":"harvest"`) {
		t.Errorf("missing string attr: %q", out)
	}
	if !strings.Contains(out, `"restarts":2`) {
		t.Errorf("missing int attr: %q", out)
	}
}

func TestSlogHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(zl)).WithGroup("supervisor")
	slogger.Warn("restarting", "service", "catalog")

	if !strings.Contains(buf.String(), `"supervisor.service":"catalog"`) {
		t.Errorf("expected group-prefixed key, got %q", buf.String())
	}
}

func TestSlogHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(zl)).With("tree", "musea")
	slogger.Error("failed")

	if !strings.Contains(buf.String(), `"tree":"musea"`) {
		t.Errorf("expected pre-configured attr, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("expected error level, got %q", buf.String())
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	zl := zerolog.New(nil).Level(zerolog.WarnLevel)
	h := NewSlogHandlerWithLogger(zl)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
