package telemetry

import (
	"sync"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// Hub fans endpoint status changes out to live page subscribers (SSE and WebSocket).
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan domain.StatusUpdate]struct{}
	latest      map[string]domain.StatusUpdate // endpoint name -> last update
	closed      bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan domain.StatusUpdate]struct{}),
		latest:      make(map[string]domain.StatusUpdate),
	}
}

// Subscribe registers a new client. The channel is primed with the latest known
// status of every endpoint so a fresh page does not wait for the next change.
func (h *Hub) Subscribe() chan domain.StatusUpdate {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.StatusUpdate, 16) // Buffer so a slow client never blocks the poller
	if h.closed {
		close(ch)
		return ch
	}
	for _, u := range h.latest {
		select {
		case ch <- u:
		default:
		}
	}
	h.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a client channel. Safe to call twice.
func (h *Hub) Unsubscribe(ch chan domain.StatusUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Broadcast records the update and delivers it to every subscriber.
func (h *Hub) Broadcast(update domain.StatusUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest[update.Endpoint] = update
	for ch := range h.subscribers {
		select {
		case ch <- update:
		default: // Drop for clients whose buffer is full
		}
	}
}

// Close ends every open stream by closing its channel. Later subscribers get an
// already-closed channel. Call it before http.Server.Shutdown, which does not
// cancel in-flight streaming requests.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Subscribers reports how many clients are attached.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
