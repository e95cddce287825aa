package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nikhil/hackfest/internal/events"
	"github.com/nikhil/hackfest/internal/handlers"
	"github.com/nikhil/hackfest/internal/middleware"
)

// RegisterWebSocketRoutes wires the organizer payment-events feed.
func RegisterWebSocketRoutes(router *mux.Router, hub *events.Hub) {
	wsHandler := handlers.NewWebSocketHandler(hub)

	// WebSocket endpoint with authentication via query parameter
	router.Handle("/ws/events", middleware.WebSocketAuthMiddleware(http.HandlerFunc(wsHandler.HandleWebSocket))).Methods("GET", "OPTIONS")
}
