// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression(t *testing.T) {
	t.Parallel()

	t.Run("compresses when client accepts gzip", func(t *testing.T) {
		t.Parallel()
		body := strings.Repeat("review text ", 200)
		handler := Compression(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler(rec, req)

		if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
			t.Fatalf("Content-Encoding = %q, want gzip", got)
		}

		gz, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("failed to create gzip reader: %v", err)
		}
		defer gz.Close()

		decompressed, err := io.ReadAll(gz)
		if err != nil {
			t.Fatalf("failed to decompress: %v", err)
		}
		if string(decompressed) != body {
			t.Error("decompressed body does not match original")
		}
	})

	t.Run("passes through when gzip not accepted", func(t *testing.T) {
		t.Parallel()
		handler := Compression(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain"))
		})

		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Header().Get("Content-Encoding") != "" {
			t.Error("response should not be compressed")
		}
		if rec.Body.String() != "plain" {
			t.Errorf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("preserves status code", func(t *testing.T) {
		t.Parallel()
		handler := Compression(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("missing"))
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
