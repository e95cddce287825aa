package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/nikhil/hackfest/internal/events"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin filtering happens in the CORS middleware.
	},
}

// WebSocketHandler upgrades organizer dashboard connections and attaches
// them to the payment-events hub.
type WebSocketHandler struct {
	hub *events.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *events.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket handles incoming WebSocket connections
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}

	client := h.hub.NewClient(conn)
	go client.WritePump()
	go client.ReadPump()
}
