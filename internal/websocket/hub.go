package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub maintains active shell connections and fans events out to them
type Hub struct {
	// Registered clients (clientID -> Client)
	clients map[string]*Client

	// Outbound frames for every client
	broadcast chan []byte

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Called for every inbound message other than ping
	onMessage func(c *Client, msg IncomingMessage)

	// Mutex for thread-safe client map access
	mu sync.RWMutex
}

// Event is the envelope of every frame pushed to the shell
type Event struct {
	Type      string      `json:"type"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// OnMessage sets the handler for inbound client messages. Call before Run.
func (h *Hub) OnMessage(fn func(c *Client, msg IncomingMessage)) {
	h.onMessage = fn
}

// Run starts the hub's main loop and returns when ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			log.Println("👋 [WEBSOCKET] Hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			log.Printf("✅ [WEBSOCKET] Shell CONNECTED")
			log.Printf("   Client ID: %s", client.ID)
			log.Printf("   Total connected clients: %d", total)
			log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				log.Printf("🔴 [WEBSOCKET] Shell DISCONNECTED: %s (remaining %d)", client.ID, len(h.clients))
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full, disconnect
					close(client.send)
					delete(h.clients, id)
					log.Printf("⚠️ Client buffer full, disconnecting: %s", id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event for every connected shell. It never blocks; when
// the queue is full the event is dropped.
func (h *Hub) Publish(eventType string, data interface{}) {
	frame, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		log.Printf("❌ Failed to marshal %s event: %v", eventType, err)
		return
	}

	select {
	case h.broadcast <- frame:
	default:
		log.Printf("⚠️ Broadcast queue full, dropping %s event", eventType)
	}
}

// SendToClient delivers an event to a single shell
func (h *Hub) SendToClient(clientID string, eventType string, data interface{}) bool {
	frame, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		log.Printf("❌ Failed to marshal %s event: %v", eventType, err)
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[clientID]
	if !ok {
		return false
	}
	select {
	case client.send <- frame:
		return true
	default:
		return false
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
