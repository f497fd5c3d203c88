// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.4
// Author: Lukas Bower
// Date Modified: 2026-08-09
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"cohserve/devserver/reload"
	"cohserve/devserver/static"
	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
)

// Config holds server configuration. Root must be an existing directory;
// Port 0 binds an ephemeral port.
type Config struct {
	Bind       string
	Port       int
	Root       string
	AccessLog  string
	LiveReload bool
	Out        io.Writer
}

// Server wraps the HTTP server and router.
type Server struct {
	cfg     Config
	router  *chi.Mux
	hub     *reload.Hub
	watcher *reload.Watcher
	start   time.Time
	out     io.Writer

	mu    sync.Mutex
	bound string
}

// New returns an initialized server.
func New(cfg Config) (*Server, error) {
	if err := static.CheckRoot(cfg.Root); err != nil {
		return nil, err
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	s := &Server{cfg: cfg, router: chi.NewRouter(), start: time.Now(), out: out}
	if cfg.LiveReload {
		hdr := http.Header{}
		setCORS(hdr)
		s.hub = reload.NewHub(hdr)
		w, err := reload.NewWatcher(cfg.Root, s.hub)
		if err != nil {
			return nil, fmt.Errorf("live reload: %w", err)
		}
		s.watcher = w
	}
	s.initRoutes()
	return s, nil
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, fmt.Sprint(s.cfg.Port))
}

// BoundAddr returns the address actually bound once Start has the
// listener, falling back to the configured address before that.
func (s *Server) BoundAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != "" {
		return s.bound
	}
	return s.Addr()
}

// Start binds the listener and serves until ctx is done. A bind failure
// is returned immediately; a clean shutdown returns http.ErrServerClosed.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.Addr(), err)
	}
	s.mu.Lock()
	s.bound = ln.Addr().String()
	s.mu.Unlock()

	if s.watcher != nil {
		go func() {
			if err := s.watcher.Run(ctx); err != nil {
				log.Printf("reload watcher: %v", err)
			}
		}()
	}

	srv := &http.Server{Handler: s.router}
	go func() {
		<-ctx.Done()
		if s.hub != nil {
			s.hub.Close()
		}
		ctxTo, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctxTo)
	}()
	s.banner()
	return srv.Serve(ln)
}

func (s *Server) banner() {
	_, port, err := net.SplitHostPort(s.BoundAddr())
	if err != nil {
		port = fmt.Sprint(s.cfg.Port)
	}
	fmt.Fprintf(s.out, "cohserve running at %s\n", color.CyanString("http://localhost:%s/", port))
	fmt.Fprintf(s.out, "Serving %s\n", s.cfg.Root)
	if s.cfg.LiveReload {
		fmt.Fprintf(s.out, "Live reload on: pages including %s reload on change\n", reload.ScriptPath)
	}
	fmt.Fprintln(s.out, "Press Ctrl+C to stop")
}
