// CLASSIFICATION: COMMUNITY
// Filename: hub.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-08-01
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package reload pushes change notifications to browsers during local
// development. A Watcher observes the document root and a Hub fans the
// coalesced events out to connected WebSocket clients.
package reload

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is pushed to connected browsers when the watcher fires.
type Message struct {
	Event string `json:"event"`
	Path  string `json:"path,omitempty"`
}

// Hub tracks connected reload clients and broadcasts change events.
type Hub struct {
	mu       sync.Mutex
	clients  map[string]*websocket.Conn
	upgrader websocket.Upgrader
	header   http.Header
}

// NewHub returns an empty hub. header entries are included in every
// upgrade response; the server routes its CORS set through here.
func NewHub(header http.Header) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			// The page may be served from any origin during development.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		header: header,
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast pushes a reload message to every connected client. Clients
// whose writes fail are dropped.
func (h *Hub) Broadcast(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteJSON(Message{Event: "reload", Path: path}); err != nil {
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// ServeHTTP upgrades the connection and parks it until the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, h.header)
	if err != nil {
		log.Printf("reload upgrade: %v", err)
		return
	}
	id := uuid.New().String()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	go h.drain(id, conn)
}

// drain consumes client frames so close handshakes are processed; any read
// error unregisters the client.
func (h *Hub) drain(id string, conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
	conn.Close()
}

// Close drops every client. Called on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}
