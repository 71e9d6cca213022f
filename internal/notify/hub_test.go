package notify

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("hub did not stop")
		}
	})
	return hub, cancel
}

func attach(t *testing.T, hub *Hub, buffer int) *Client {
	t.Helper()
	before := hub.ClientCount()
	client := &Client{hub: hub, send: make(chan Message, buffer)}
	hub.register <- client
	require.Eventually(t, func() bool {
		return hub.ClientCount() == before+1
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub, _ := startHub(t)
	first := attach(t, hub, 16)
	second := attach(t, hub, 16)

	hub.AttendeesChanged()

	for _, client := range []*Client{first, second} {
		select {
		case msg := <-client.send:
			assert.Equal(t, MessageTypeAttendeesChanged, msg.Type)
		case <-time.After(time.Second):
			t.Fatal("client did not receive the change signal")
		}
	}
}

func TestHub_SlowClientIsDroppedNotWaitedFor(t *testing.T) {
	hub, _ := startHub(t)
	slow := attach(t, hub, 0) // nothing ever reads; every send would block
	healthy := attach(t, hub, 16)

	hub.AttendeesChanged()

	select {
	case msg := <-healthy.send:
		assert.Equal(t, MessageTypeAttendeesChanged, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("healthy client starved by a slow one")
	}

	select {
	case <-slow.send:
		t.Fatal("slow client should have been skipped")
	default:
	}
}

func TestHub_MissedSignalsAreNotQueuedForLateClients(t *testing.T) {
	hub, _ := startHub(t)
	hub.AttendeesChanged()

	// give the hub a moment to fan out into an empty client set
	time.Sleep(20 * time.Millisecond)
	late := attach(t, hub, 16)

	select {
	case <-late.send:
		t.Fatal("late client must not receive catch-up delivery")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub, _ := startHub(t)
	client := attach(t, hub, 16)

	hub.unregister <- client
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_ShutdownClosesAllClients(t *testing.T) {
	hub, cancel := startHub(t)
	client := attach(t, hub, 16)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, open := <-client.send:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
