// Package websocket feeds live dashboard counts to connected admin pages.
// file: websocket/connection.go
package websocket

import (
	"encoding/json"
	"net"
	"time"

	"github.com/gorilla/websocket"

	"academy-admin/logger"
)

// WSConn is the part of *websocket.Conn a Connection uses.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

// Connection is one admin browser tab.
type Connection struct {
	hub  *Hub
	conn WSConn
	send chan []byte
}

func newConnection(hub *Hub, conn WSConn) *Connection {
	return &Connection{hub: hub, conn: conn, send: make(chan []byte, sendBuffer)}
}

// readPump handles inbound messages and unregisters the connection when the
// client goes away.
func (c *Connection) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn.Printf("[readPump] Read error from %v: %v", c.conn.RemoteAddr(), err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debug.Printf("[readPump] Invalid JSON from %v: %v", c.conn.RemoteAddr(), err)
			continue
		}
		c.handleIncoming(msg)
	}
}

func (c *Connection) handleIncoming(msg ClientMessage) {
	switch msg.Action {
	case ActionRefresh:
		c.hub.replay(c)
	default:
		logger.Debug.Printf("[handleIncoming] Unhandled action %q", msg.Action)
	}
}

// writePump drains send and pings the client. It exits when send is closed
// or a write fails.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to %v: %v", c.conn.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
	}
}
