package telemetry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/telemetry"
)

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	hub := telemetry.NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Broadcast(domain.StatusUpdate{Endpoint: "risk", Status: domain.StatusLive})

	for _, ch := range []chan domain.StatusUpdate{a, b} {
		select {
		case u := <-ch:
			assert.Equal(t, domain.StatusLive, u.Status)
		case <-time.After(time.Second):
			t.Fatal("update not delivered")
		}
	}
}

func TestHub_SubscribeReplaysLatest(t *testing.T) {
	hub := telemetry.NewHub()
	hub.Broadcast(domain.StatusUpdate{Endpoint: "risk", Status: domain.StatusError})
	hub.Broadcast(domain.StatusUpdate{Endpoint: "risk", Status: domain.StatusOffline})

	ch := hub.Subscribe()

	require.Len(t, ch, 1)
	u := <-ch
	assert.Equal(t, domain.StatusOffline, u.Status)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := telemetry.NewHub()
	ch := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	hub.Unsubscribe(ch)
	hub.Unsubscribe(ch)

	assert.Equal(t, 0, hub.Subscribers())
	_, open := <-ch
	assert.False(t, open)

	// Broadcasting after every client left must not panic.
	hub.Broadcast(domain.StatusUpdate{Endpoint: "stress", Status: domain.StatusLive})
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := telemetry.NewHub()
	hub.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Broadcast(domain.StatusUpdate{Endpoint: "risk", Status: domain.StatusLive})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a full subscriber")
	}
}

func TestHub_CloseEndsStreams(t *testing.T) {
	hub := telemetry.NewHub()
	ch := hub.Subscribe()

	hub.Close()

	_, ok := <-ch
	assert.False(t, ok, "subscriber channel should be closed")
	assert.Zero(t, hub.Subscribers())

	// Unsubscribe and Broadcast after Close are harmless.
	hub.Unsubscribe(ch)
	hub.Broadcast(domain.StatusUpdate{Endpoint: "risk", Status: domain.StatusLive})

	_, ok = <-hub.Subscribe()
	assert.False(t, ok, "subscribing after close yields a closed channel")
}
