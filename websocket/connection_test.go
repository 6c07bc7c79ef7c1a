// Unit tests for connection.go. fakeConn stands in for a WSConn so the pumps
// run without network I/O.
package websocket

import (
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy-admin/models"
)

type frame struct {
	messageType int
	data        []byte
}

// fakeConn serves reads from inbox and records every write.
type fakeConn struct {
	inbox chan []byte

	mu     sync.Mutex
	frames []frame
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{inbox: make(chan []byte, 8)}
}

func (fc *fakeConn) WriteMessage(messageType int, data []byte) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.frames = append(fc.frames, frame{messageType, data})
	return nil
}

func (fc *fakeConn) ReadMessage() (int, []byte, error) {
	msg, ok := <-fc.inbox
	if !ok {
		return 0, nil, errors.New("connection reset")
	}
	return websocket.TextMessage, msg, nil
}

func (fc *fakeConn) Close() error {
	fc.mu.Lock()
	fc.closed = true
	fc.mu.Unlock()
	return nil
}

func (fc *fakeConn) written(messageType int) [][]byte {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	var out [][]byte
	for _, f := range fc.frames {
		if f.messageType == messageType {
			out = append(out, f.data)
		}
	}
	return out
}

func (fc *fakeConn) SetWriteDeadline(time.Time) error { return nil }
func (fc *fakeConn) SetReadDeadline(time.Time) error { return nil }
func (fc *fakeConn) SetReadLimit(int64) {}
func (fc *fakeConn) SetPongHandler(func(string) error) {}
func (fc *fakeConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 12345}
}

func TestReadPump_RefreshReplaysCounts(t *testing.T) {
	hub := NewHub()
	hub.PublishCounts(models.DashboardCounts{Trials: 4, Contacts: 2})

	fc := newFakeConn()
	c := newConnection(hub, fc)
	hub.register(c)
	<-c.send // initial snapshot

	done := make(chan struct{})
	go func() {
		c.readPump()
		close(done)
	}()

	fc.inbox <- []byte(`{"action":"refresh"}`)
	select {
	case msg := <-c.send:
		var got CountsMessage
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, CountsMessage{Action: ActionCounts, Trials: 4, Contacts: 2}, got)
	case <-time.After(time.Second):
		t.Fatal("expected counts after refresh")
	}

	close(fc.inbox)
	<-done
	assert.Zero(t, hub.Len(), "read error unregisters the connection")
	_, open := <-c.send
	assert.False(t, open, "send is closed on unregister")
}

func TestReadPump_IgnoresGarbage(t *testing.T) {
	hub := NewHub()
	fc := newFakeConn()
	c := newConnection(hub, fc)
	hub.register(c)

	done := make(chan struct{})
	go func() {
		c.readPump()
		close(done)
	}()

	fc.inbox <- []byte(`not json`)
	fc.inbox <- []byte(`{"action":"dance"}`)
	close(fc.inbox)
	<-done

	assert.Zero(t, hub.Len())
}

func TestWritePump_DeliversThenCloses(t *testing.T) {
	fc := newFakeConn()
	c := newConnection(NewHub(), fc)

	done := make(chan struct{})
	go func() {
		c.writePump()
		close(done)
	}()

	c.send <- []byte(`{"action":"counts"}`)
	close(c.send)
	<-done

	assert.Equal(t, [][]byte{[]byte(`{"action":"counts"}`)}, fc.written(websocket.TextMessage))
	assert.Len(t, fc.written(websocket.CloseMessage), 1)
	assert.True(t, fc.closed)
}
