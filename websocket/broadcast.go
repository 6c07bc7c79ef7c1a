// file: websocket/broadcast.go
package websocket

import (
	"sync"

	"academy-admin/logger"
	"academy-admin/models"
)

// Hub tracks the open admin connections and remembers the last counts so a
// newly opened page is populated immediately.
type Hub struct {
	mu    sync.RWMutex
	conns map[*Connection]struct{}
	last  []byte
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*Connection]struct{})}
}

// PublishCounts implements services.CountsPublisher.
func (h *Hub) PublishCounts(counts models.DashboardCounts) {
	msg, err := encodeCounts(counts)
	if err != nil {
		logger.Error.Printf("PublishCounts: marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	h.last = msg
	h.mu.Unlock()

	h.Broadcast(msg)
}

// Broadcast queues message on every connection. A connection whose buffer is
// full misses the message.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns {
		select {
		case c.send <- message:
		default:
			logger.Warn.Printf("Broadcast: dropping message for %v", c.conn.RemoteAddr())
		}
	}
}

// Len is the number of open connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close drops every connection; their write pumps send a close frame.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		delete(h.conns, c)
		close(c.send)
	}
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	logger.Debug.Printf("register: %v joined, %d open", c.conn.RemoteAddr(), len(h.conns))
}

func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; !ok {
		return
	}
	delete(h.conns, c)
	close(c.send)
	logger.Debug.Printf("unregister: %v left, %d open", c.conn.RemoteAddr(), len(h.conns))
}

// replay resends the last counts to one connection.
func (h *Hub) replay(c *Connection) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.conns[c]; !ok || h.last == nil {
		return
	}
	select {
	case c.send <- h.last:
	default:
	}
}
