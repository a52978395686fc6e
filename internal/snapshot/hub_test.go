package snapshot

import (
	"testing"

	"go.uber.org/zap"
)

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	hub := NewHub(zap.NewNop())

	a := hub.Subscribe()
	b := hub.Subscribe()
	if hub.Subscribers() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", hub.Subscribers())
	}

	hub.Broadcast(Message{Type: MessageTypeRatings, Data: []string{"x"}})

	for name, ch := range map[string]chan Message{"a": a, "b": b} {
		select {
		case msg := <-ch:
			if msg.Type != MessageTypeRatings {
				t.Errorf("%s: expected type %q, got %q", name, MessageTypeRatings, msg.Type)
			}
		default:
			t.Errorf("%s: expected a buffered message", name)
		}
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(zap.NewNop())

	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	if hub.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.Subscribers())
	}

	// Channel must be closed so a consuming goroutine can exit.
	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after unsubscribe")
	}

	// Double unsubscribe must not panic.
	hub.Unsubscribe(ch)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(zap.NewNop())

	ch := hub.Subscribe()
	// Fill the buffer and then some; Broadcast must never block.
	for i := 0; i < cap(ch)+5; i++ {
		hub.Broadcast(Message{Type: MessageTypeRatings})
	}

	if len(ch) != cap(ch) {
		t.Errorf("expected full buffer of %d, got %d", cap(ch), len(ch))
	}
}
