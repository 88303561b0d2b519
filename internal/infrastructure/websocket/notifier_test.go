package websocket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltmarket/internal/domain/entity"
)

func TestNotifierReconnectDisplacesPreviousConnection(t *testing.T) {
	n := NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	first := &Client{UserID: "u1", Send: make(chan []byte, 1)}
	second := &Client{UserID: "u1", Send: make(chan []byte, 1)}

	n.Register <- first
	n.Register <- second

	// The displaced connection's channel is closed, which ends its write
	// pump.
	_, open := <-first.Send
	assert.False(t, open)

	// The stale connection's teardown must not unregister the live one.
	n.Unregister <- first

	n.Notify("u1", entity.Notification{
		ID:   "n1",
		Type: entity.NotificationBusinessApproved,
	})

	select {
	case msg := <-second.Send:
		assert.Contains(t, string(msg), string(entity.NotificationBusinessApproved))
	default:
		t.Fatal("live connection received no event")
	}
}

func TestNotifierUnregisterClosesSendChannel(t *testing.T) {
	n := NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	client := &Client{UserID: "u1", Send: make(chan []byte, 1)}
	n.Register <- client
	n.Unregister <- client

	_, open := <-client.Send
	require.False(t, open)

	// Events for a disconnected user are dropped silently.
	n.Notify("u1", entity.Notification{ID: "n1", Type: entity.NotificationBusinessApproved})
}
