package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"warelay/entity"
)

// Event represents a WebSocket event sent to feed clients.
type Event struct {
	Type string      `json:"type"` // "new_message"
	Data interface{} `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts inbound
// message events to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastMessage sends a new_message event for a normalized inbound
// message to all connected feed clients. Media bytes stay out of the feed.
func (h *Hub) BroadcastMessage(msg *entity.InboundMessage) {
	h.broadcast <- &Event{
		Type: "new_message",
		Data: NewFeedMessage(msg),
	}
}

// NewFeedMessage projects an inbound message into its feed representation,
// assigning a fresh event id and bounding the text preview.
func NewFeedMessage(msg *entity.InboundMessage) entity.FeedMessage {
	feed := entity.FeedMessage{
		EventID:    uuid.NewString(),
		MessageID:  msg.MessageID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Type:       msg.Type,
		Timestamp:  msg.Timestamp,
	}
	if msg.Text != nil {
		feed.Preview = previewText(msg.Text.Body)
	}
	if msg.Media != nil {
		feed.MIMEType = msg.Media.MIMEType
	}
	return feed
}

// previewText bounds the preview carried in feed events.
func previewText(text string) string {
	if len(text) <= entity.PreviewLimit {
		return text
	}
	return text[:entity.PreviewLimit] + "..."
}
