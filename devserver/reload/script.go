// CLASSIFICATION: COMMUNITY
// Filename: script.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-08-01
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package reload

import "net/http"

// SocketPath is the WebSocket endpoint the client script connects to.
const SocketPath = "/__cohserve/reload"

// ScriptPath is where the client script is served from.
const ScriptPath = "/__cohserve/reload.js"

// Script is the client snippet served at /__cohserve/reload.js. Pages
// include it themselves; served file bytes are never rewritten.
const Script = `(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "` + SocketPath + `");
  sock.onmessage = function () { location.reload(); };
})();
`

// ScriptHandler serves the reload client script.
func ScriptHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Write([]byte(Script))
	}
}
