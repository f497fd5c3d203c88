// CLASSIFICATION: COMMUNITY
// Filename: serve_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-06-29
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileHandlerServesBytes(t *testing.T) {
	dir := t.TempDir()
	body := []byte("<html>hello</html>")
	if err := os.WriteFile(filepath.Join(dir, "page.html"), body, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/page.html", nil)
	rec := httptest.NewRecorder()
	FileHandler(dir).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: %d", rec.Code)
	}
	if rec.Body.String() != string(body) {
		t.Fatalf("body mismatch: %q", rec.Body.String())
	}
}

func TestFileHandlerMissingPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/absent.js", nil)
	rec := httptest.NewRecorder()
	FileHandler(t.TempDir()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestFileHandlerDirectoryListing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	FileHandler(dir).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: %d", rec.Code)
	}
	listing := rec.Body.String()
	if !strings.Contains(listing, "a.txt") || !strings.Contains(listing, "b.txt") {
		t.Fatalf("listing missing entries: %q", listing)
	}
}

func TestFileHandlerPrefersIndex(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!DOCTYPE html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	FileHandler(dir).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Fatalf("expected index content, got %q", rec.Body.String())
	}
}

func TestCheckRoot(t *testing.T) {
	if err := CheckRoot(t.TempDir()); err != nil {
		t.Fatalf("valid root rejected: %v", err)
	}
	if err := CheckRoot(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := CheckRoot(path); err == nil {
		t.Fatalf("expected error for non-directory root")
	}
}
