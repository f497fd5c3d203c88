// CLASSIFICATION: COMMUNITY
// Filename: middleware.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-08-09
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"log"
	"net/http"
	"os"
)

// setCORS writes the fixed cross-origin headers. The same set goes on
// plain responses and on WebSocket upgrades.
func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// corsHeaders decorates every response with the CORS headers before the
// wrapped handler runs, so error responses carry them too. OPTIONS
// preflights are answered directly.
func corsHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			setCORS(w.Header())
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// recoverMiddleware turns a handler panic into a contained 500.
func recoverMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("panic serving %s: %v", r.URL.Path, rec)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func accessLogger(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("open access log: %v", err)
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			rec := r.RemoteAddr + " " + r.Method + " " + r.URL.Path + "\n"
			f.Write([]byte(rec))
		})
	}
}
