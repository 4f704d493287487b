// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandlerLevels(t *testing.T) {
	tests := []struct {
		name      string
		logFunc   func(l *slog.Logger)
		wantLevel string
	}{
		{"debug", func(l *slog.Logger) { l.Debug("msg") }, "debug"},
		{"info", func(l *slog.Logger) { l.Info("msg") }, "info"},
		{"warn", func(l *slog.Logger) { l.Warn("msg") }, "warn"},
		{"error", func(l *slog.Logger) { l.Error("msg") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
			slogger := slog.New(NewSlogHandlerWithLogger(logger))

			tt.logFunc(slogger)

			if !strings.Contains(buf.String(), `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("expected level %q, got: %s", tt.wantLevel, buf.String())
			}
		})
	}
}

func TestSlogHandlerAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	slogger := slog.New(NewSlogHandlerWithLogger(logger))

	slogger.Info("with attrs",
		slog.String("name", "bootstrap"),
		slog.Int("attempt", 3),
		slog.Bool("done", true),
	)

	output := buf.String()
	for _, want := range []string{`"name":"bootstrap"`, `"attempt":3`, `"done":true`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	slogger := slog.New(NewSlogHandlerWithLogger(logger)).With(slog.String("service", "http"))

	slogger.Info("pre-configured")

	if !strings.Contains(buf.String(), `"service":"http"`) {
		t.Errorf("expected pre-configured attr, got: %s", buf.String())
	}
}

func TestSlogHandlerWithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	slogger := slog.New(NewSlogHandlerWithLogger(logger)).WithGroup("supervisor")

	slogger.Info("grouped", slog.String("state", "running"))

	if !strings.Contains(buf.String(), `"supervisor.state":"running"`) {
		t.Errorf("expected grouped key, got: %s", buf.String())
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	t.Parallel()

	logger := zerolog.New(nil).Level(zerolog.WarnLevel)
	handler := NewSlogHandlerWithLogger(logger)

	if handler.Enabled(nil, slog.LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !handler.Enabled(nil, slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    slog.Level
		expected zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.input); got != tt.expected {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
