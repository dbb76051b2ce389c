package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"hr-dashboard-server/logger"
)

// Event types pushed to connected dashboard clients.
const (
	EventBookmarkAdded     = "bookmark_added"
	EventBookmarkRemoved   = "bookmark_removed"
	EventFeedbackSubmitted = "feedback_submitted"
	EventEmployeeCreated   = "employee_created"
)

// Event is a directory mutation notification.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub fans directory events out to every connected client. It is
// broadcast-only: clients do not send application messages.
type Hub struct {
	clients map[*Client]bool

	Broadcast  chan *Event
	Register   chan *Client
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new event hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.Debug("event client connected: user=%d", client.UserID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logger.Debug("event client disconnected: user=%d", client.UserID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish queues an event for broadcast. Drops the event rather than block
// the mutating request when the queue is full.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	select {
	case h.Broadcast <- event:
	default:
		logger.Warn("event queue full, dropping %s event", eventType)
	}
}

// ConnectedClients returns the number of connected clients.
func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal event", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}
