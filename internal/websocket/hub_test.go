package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient("client-1", "user-1", hub, nil)
	hub.Register <- client

	require.Eventually(t, func() bool {
		return hub.HasClient("client-1")
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.GetClientCount())

	hub.Unregister <- client
	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 0
	}, time.Second, 10*time.Millisecond)
	assert.False(t, hub.HasClient("client-1"))
}

func TestHubBroadcastToUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	target := NewClient("client-1", "user-1", hub, nil)
	other := NewClient("client-2", "user-2", hub, nil)
	hub.Register <- target
	hub.Register <- other

	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 2
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastToUser("user-1", []byte("olá"))

	select {
	case msg := <-target.Send:
		assert.Equal(t, "olá", string(msg))
	case <-time.After(time.Second):
		t.Fatal("target client did not receive message")
	}

	// 其他用户的客户端不应收到
	select {
	case msg := <-other.Send:
		t.Fatalf("unexpected message for other user: %s", msg)
	default:
	}
}

func TestHubBroadcastAll(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := NewClient("client-1", "user-1", hub, nil)
	second := NewClient("client-2", "user-2", hub, nil)
	hub.Register <- first
	hub.Register <- second

	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 2
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast <- []byte("aviso geral")

	for _, client := range []*Client{first, second} {
		select {
		case msg := <-client.Send:
			assert.Equal(t, "aviso geral", string(msg))
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}
