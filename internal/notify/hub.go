// Package notify broadcasts change signals to connected dashboards over
// websockets. The contract is at-most-once and payload-free: a signal means
// "attendee set changed, re-fetch if you care". Nothing is queued for
// disconnected or slow observers; a reconnecting dashboard re-fetches state.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// MessageTypeAttendeesChanged tells dashboards to re-fetch the attendee list.
const MessageTypeAttendeesChanged = "update-attendees"

// Message is the wire format sent to dashboard clients.
type Message struct {
	Type string `json:"type"`
}

// Broadcaster is what the service layer depends on.
type Broadcaster interface {
	AttendeesChanged()
}

// Hub maintains the set of connected clients and fans broadcasts out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        zerolog.Logger
}

var _ Broadcaster = (*Hub)(nil)

// NewHub creates a hub. Run must be started before clients attach.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// AttendeesChanged queues one change signal. It never blocks the mutating
// request: if the hub is saturated the signal is dropped, which the
// at-most-once contract allows.
func (h *Hub) AttendeesChanged() {
	select {
	case h.broadcast <- Message{Type: MessageTypeAttendeesChanged}:
	default:
	}
}

// Run owns the client set until ctx is canceled, then closes every client.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return ctx.Err()

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Info().Int("clients", h.ClientCount()).Msg("dashboard connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.log.Info().Int("clients", h.ClientCount()).Msg("dashboard disconnected")

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// slow client, drop the signal rather than stall the hub
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}
