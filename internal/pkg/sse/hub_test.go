package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Event: "check_in", Data: "payload"})

	event := <-ch
	assert.Equal(t, "check_in", event.Event)
	assert.Equal(t, "payload", event.Data)
}

func TestHubPublishOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Event: "check_in"})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event delivered: %v", event)
	default:
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Broadcast(Event{Event: "check_out", Data: "payload"})

	event1 := <-ch1
	event2 := <-ch2
	assert.Equal(t, "check_out", event1.Event)
	assert.Equal(t, "user-1", event1.UserID)
	assert.Equal(t, "check_out", event2.Event)
	assert.Equal(t, "user-2", event2.UserID)
}

func TestHubCleanup(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel buffer is 10; further publishes must not deadlock.
	for i := 0; i < 25; i++ {
		hub.Publish("user-1", Event{Event: "check_in"})
	}
}
