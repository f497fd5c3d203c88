// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-06-29
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

import (
	"fmt"
	"net/http"
	"os"
)

// FileHandler returns an HTTP handler that serves files from root.
// Directory requests serve index.html when present and otherwise a
// generated listing of the directory's immediate children.
func FileHandler(root string) http.Handler {
	return http.FileServer(http.Dir(root))
}

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document root %s is not a directory", root)
	}
	return nil
}
