// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"sync"
)

// Message is one payload to fan out to a session's clients. Sender is
// nil for server-originated notifications, which go to every client;
// otherwise the sender is skipped so a snapshot only overwrites peers.
type Message struct {
	Session string
	Data    []byte
	Sender  *Client
}

// Hub fans grid snapshots out to every client of a session. State is
// last-writer-wins: whatever snapshot arrives most recently replaces
// what peers hold, with no merging.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
}

// NewHub creates a hub. Call Run in a goroutine before serving clients.
func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message),
	}
}

// Run processes registration and broadcast events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.sessions[client.Session] == nil {
				h.sessions[client.Session] = make(map[*Client]bool)
			}
			h.sessions[client.Session][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.sessions[client.Session]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.sessions, client.Session)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			clients := h.sessions[msg.Session]
			for client := range clients {
				if client == msg.Sender {
					continue
				}
				select {
				case client.Send <- msg.Data:
				default:
					// Slow consumers are dropped rather than letting
					// them stall the whole session.
					close(client.Send)
					delete(clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish sends a server-originated payload to every client of a
// session. Used by the finalize toggle to push confirmed/canceled
// notifications. Safe to call with no clients connected.
func (h *Hub) Publish(session string, data []byte) {
	h.broadcast <- Message{Session: session, Data: data}
}
