package authRoute

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nikhil/hackfest/internal/handlers"
	"github.com/nikhil/hackfest/internal/middleware"
	services "github.com/nikhil/hackfest/internal/service/auth"
)

func RegisterAuthRoutes(router *mux.Router, authService *services.AuthService) {
	authHandler := handlers.NewAuthHandler(authService)

	// Public routes without auth middleware
	publicRouter := router.PathPrefix("/auth").Subrouter()
	publicRouter.Use(middleware.ResponseWrapperMiddleware)
	publicRouter.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)
}
