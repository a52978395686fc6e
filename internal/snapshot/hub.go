package snapshot

import (
	"sync"

	"go.uber.org/zap"
)

// Message types pushed over the live feed.
const (
	MessageTypeRatings = "ratings"
	MessageTypeSeries  = "series"
)

// Message carries one full collection snapshot. Snapshots supersede
// each other wholesale; there are no deltas.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans the latest snapshot out to live-feed subscribers. It is the
// only shared mutable state between request handlers.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Message]struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[chan Message]struct{}),
		log:  log.With(zap.String("component", "snapshot_hub")),
	}
}

// Subscribe registers a new live-feed subscriber. The returned channel
// is buffered; Unsubscribe must be called when the consumer is done.
func (h *Hub) Subscribe() chan Message {
	ch := make(chan Message, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	total := len(h.subs)
	h.mu.Unlock()

	h.log.Debug("Live feed subscriber added", zap.Int("total", total))
	return ch
}

func (h *Hub) Unsubscribe(ch chan Message) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	total := len(h.subs)
	h.mu.Unlock()

	h.log.Debug("Live feed subscriber removed", zap.Int("total", total))
}

// Broadcast delivers the snapshot to every subscriber. A subscriber
// whose buffer is full misses this message rather than blocking the
// mutation path; the next broadcast fully supersedes it anyway.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
			h.log.Warn("Dropping snapshot for slow subscriber",
				zap.String("type", msg.Type))
		}
	}
}

// Subscribers reports the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
