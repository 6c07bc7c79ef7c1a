// file: websocket/broadcast_test.go
package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy-admin/models"
)

func TestHub_PublishCountsReachesEveryConnection(t *testing.T) {
	hub := NewHub()
	a := newConnection(hub, newFakeConn())
	b := newConnection(hub, newFakeConn())
	hub.register(a)
	hub.register(b)

	hub.PublishCounts(models.DashboardCounts{Trials: 1})

	for _, c := range []*Connection{a, b} {
		var got CountsMessage
		require.NoError(t, json.Unmarshal(<-c.send, &got))
		assert.Equal(t, int64(1), got.Trials)
		assert.Equal(t, ActionCounts, got.Action)
	}
}

func TestHub_NewConnectionGetsLastCounts(t *testing.T) {
	hub := NewHub()
	hub.PublishCounts(models.DashboardCounts{Trials: 7, Contacts: 3})

	c := newConnection(hub, newFakeConn())
	hub.register(c)

	require.Len(t, c.send, 1)
	assert.JSONEq(t, `{"action":"counts","trials":7,"contacts":3}`, string(<-c.send))
}

func TestHub_BroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	c := newConnection(hub, newFakeConn())
	hub.register(c)

	for i := 0; i < sendBuffer+5; i++ {
		hub.Broadcast([]byte("x"))
	}
	assert.Len(t, c.send, sendBuffer, "extra messages are dropped, not blocked on")
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	hub := NewHub()
	c := newConnection(hub, newFakeConn())
	hub.register(c)

	hub.unregister(c)
	assert.NotPanics(t, func() { hub.unregister(c) })
	assert.Zero(t, hub.Len())
	assert.NotPanics(t, func() { hub.Broadcast([]byte("after")) })
}

func TestHub_Close(t *testing.T) {
	hub := NewHub()
	c := newConnection(hub, newFakeConn())
	hub.register(c)

	hub.Close()
	_, open := <-c.send
	assert.False(t, open)
	assert.NotPanics(t, func() { hub.unregister(c) })
}
