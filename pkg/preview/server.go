// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

type UI interface {
	Printf(string, ...interface{})
	Warnf(string, ...interface{})
}

type ServerOpts struct {
	ListenAddr      string
	Dir             string
	RedirectToHTTPS bool
}

type Server struct {
	opts ServerOpts
	ui   UI
}

func NewServer(opts ServerOpts, ui UI) *Server {
	return &Server{opts, ui}
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.redirectToHTTPS(s.noCacheHandler(http.FileServer(http.Dir(s.opts.Dir)).ServeHTTP)))
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	fileInfo, err := os.Stat(s.opts.Dir)
	if err != nil {
		return fmt.Errorf("Checking pages directory '%s' (run generate first?): %w", s.opts.Dir, err)
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("Expected pages directory '%s' to be a directory", s.opts.Dir)
	}

	server := &http.Server{
		Addr:              s.opts.ListenAddr,
		Handler:           s.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownErrCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErrCh <- server.Shutdown(shutdownCtx)
	}()

	s.ui.Printf("Serving %s on http://%s\n", s.opts.Dir, server.Addr)

	err = server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownErrCh
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok")) // not fmt.Fprintf!
}

func (s *Server) redirectToHTTPS(wrappedFunc http.HandlerFunc) http.HandlerFunc {
	if !s.opts.RedirectToHTTPS {
		return wrappedFunc
	}
	return func(w http.ResponseWriter, r *http.Request) {
		checkHTTPS := true
		clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
		if err == nil && clientIP == "127.0.0.1" {
			checkHTTPS = false
		}

		if checkHTTPS && r.Header.Get("X-Forwarded-Proto") != "https" {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				s.ui.Warnf("Rejecting insecure %s %s\n", r.Method, r.URL.Path)
				http.Error(w, "expected HTTPS connection", http.StatusBadRequest)
				return
			}
			if r.Host == "" {
				http.Error(w, "expected non-empty Host header", http.StatusBadRequest)
				return
			}
			http.Redirect(w, r, "https://"+r.Host+r.URL.RequestURI(), http.StatusMovedPermanently)
			return
		}

		wrappedFunc(w, r)
	}
}

var (
	noCacheHeaders = map[string]string{
		"Expires":         time.Unix(0, 0).Format(time.RFC1123),
		"Cache-Control":   "no-cache, private, max-age=0",
		"Pragma":          "no-cache",
		"X-Accel-Expires": "0",
	}
)

// Pages are regenerated in place, so browsers must never serve stale copies.
func (s *Server) noCacheHandler(wrappedFunc http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range noCacheHeaders {
			w.Header().Set(k, v)
		}

		wrappedFunc(w, r)
	}
}
