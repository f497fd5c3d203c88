// CLASSIFICATION: COMMUNITY
// Filename: routes.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-08-09
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"cohserve/devserver/api"
	"cohserve/devserver/reload"
	"cohserve/devserver/static"
)

// StatusPath is the status endpoint. Control surfaces live under the
// /__cohserve/ prefix so the served file namespace stays clean.
const StatusPath = "/__cohserve/status"

func (s *Server) initRoutes() {
	r := s.router
	r.Use(corsHeaders())
	r.Use(recoverMiddleware())
	if s.cfg.AccessLog != "" {
		r.Use(accessLogger(s.cfg.AccessLog))
	}

	r.Get(StatusPath, api.Status(s.start, s.state))
	if s.cfg.LiveReload {
		r.Get(reload.SocketPath, s.hub.ServeHTTP)
		r.Get(reload.ScriptPath, reload.ScriptHandler())
	}
	r.Handle("/*", static.FileHandler(s.cfg.Root))
}

func (s *Server) state() api.ServerState {
	st := api.ServerState{Root: s.cfg.Root, Addr: s.BoundAddr(), LiveReload: s.cfg.LiveReload}
	if s.hub != nil {
		st.ReloadClients = s.hub.ClientCount()
	}
	return st
}
