// file: websocket/handler.go
package websocket

import (
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"academy-admin/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     sameOrigin,
}

// sameOrigin accepts requests without an Origin header and those whose
// Origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// ServeWs upgrades an already authorised request and starts the pumps.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		logger.Error.Printf("[ServeWs] WebSocket upgrade error from %v: %v", r.RemoteAddr, err)
		return
	}
	logger.Info.Printf("[ServeWs] Live dashboard connected: %v", r.RemoteAddr)

	c := newConnection(h, wsConn)
	h.register(c)

	go c.writePump()
	go c.readPump()
}
