// CLASSIFICATION: COMMUNITY
// Filename: hub_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-08-01
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package reload

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, ts *httptest.Server) (*websocket.Conn, *http.Response) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn, resp
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, have %d", want, hub.ClientCount())
}

func TestHubBroadcastReachesClient(t *testing.T) {
	hub := NewHub(nil)
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn, _ := dialHub(t, ts)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Broadcast("index.html")
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Event != "reload" || msg.Path != "index.html" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestHubUpgradeHeaderPassthrough(t *testing.T) {
	header := http.Header{}
	header.Set("Access-Control-Allow-Origin", "*")
	hub := NewHub(header)
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn, resp := dialHub(t, ts)
	defer conn.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("upgrade response missing header, got %q", got)
	}
}

func TestHubDropsClosedClients(t *testing.T) {
	hub := NewHub(nil)
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn, _ := dialHub(t, ts)
	waitForClients(t, hub, 1)
	conn.Close()
	waitForClients(t, hub, 0)
}

func TestHubClose(t *testing.T) {
	hub := NewHub(nil)
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn, _ := dialHub(t, ts)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Close()
	if hub.ClientCount() != 0 {
		t.Fatalf("expected no clients after close, have %d", hub.ClientCount())
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected read error after hub close")
	}
}
