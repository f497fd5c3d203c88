// CLASSIFICATION: COMMUNITY
// Filename: status.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-07-26
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// ServerState is a point-in-time snapshot supplied by the server.
type ServerState struct {
	Root          string
	Addr          string
	LiveReload    bool
	ReloadClients int
}

// StatusResponse describes the running server.
type StatusResponse struct {
	Status        string `json:"status"`
	Uptime        string `json:"uptime"`
	Root          string `json:"root"`
	Addr          string `json:"addr"`
	LiveReload    bool   `json:"live_reload"`
	ReloadClients int    `json:"reload_clients"`
}

// Status writes a live JSON snapshot of the server. state is called per
// request so the reload client count stays current.
func Status(start time.Time, state func() ServerState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if state == nil {
			http.Error(w, "state unavailable", http.StatusServiceUnavailable)
			return
		}
		s := state()
		resp := StatusResponse{
			Status:        "ok",
			Uptime:        time.Since(start).Round(time.Second).String(),
			Root:          s.Root,
			Addr:          s.Addr,
			LiveReload:    s.LiveReload,
			ReloadClients: s.ReloadClients,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
