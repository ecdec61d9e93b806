// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preview_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/shinylive-links/pkg/cmd/ui"
	"carvel.dev/shinylive-links/pkg/preview"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, redirectToHTTPS bool) *preview.Server {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>index</h1>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-hello-python.html"), []byte("<h1>hello</h1>"), 0644))

	opts := preview.ServerOpts{Dir: dir, RedirectToHTTPS: redirectToHTTPS}
	return preview.NewServer(opts, ui.NewCustomWriterTTY(false, io.Discard, io.Discard))
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServesPages(t *testing.T) {
	server := newServer(t, false)
	mux := server.Mux()

	rec := get(t, mux, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<h1>index</h1>", rec.Body.String())
	require.Equal(t, "no-cache, private, max-age=0", rec.Header().Get("Cache-Control"))
	require.Equal(t, "no-cache", rec.Header().Get("Pragma"))

	rec = get(t, mux, "/1-hello-python.html")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<h1>hello</h1>", rec.Body.String())

	rec = get(t, mux, "/2-missing-r.html")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	server := newServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	server.Mux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
	require.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestRedirectToHTTPS(t *testing.T) {
	server := newServer(t, true)
	mux := server.Mux()

	req := httptest.NewRequest(http.MethodGet, "http://pages.example.com/index.html?x=1", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "https://pages.example.com/index.html?x=1", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "http://pages.example.com/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "http://pages.example.com/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, mux, "/")
	require.Equal(t, http.StatusOK, rec.Code, "local clients are not redirected")
}

func TestRunRequiresDirectory(t *testing.T) {
	opts := preview.ServerOpts{Dir: filepath.Join(t.TempDir(), "missing"), ListenAddr: "127.0.0.1:0"}
	server := preview.NewServer(opts, ui.NewCustomWriterTTY(false, io.Discard, io.Discard))

	err := server.Run(context.Background())
	require.ErrorContains(t, err, "run generate first")
}

func TestRunStopsWithContext(t *testing.T) {
	opts := preview.ServerOpts{Dir: t.TempDir(), ListenAddr: "127.0.0.1:0"}
	server := preview.NewServer(opts, ui.NewCustomWriterTTY(false, io.Discard, io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, server.Run(ctx))
}
