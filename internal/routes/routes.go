package routes

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/nikhil/hackfest/internal/config"
	"github.com/nikhil/hackfest/internal/events"
	"github.com/nikhil/hackfest/internal/handlers"
	"github.com/nikhil/hackfest/internal/middleware"
	"github.com/nikhil/hackfest/internal/payments"
	adminroutes "github.com/nikhil/hackfest/internal/routes/Admin"
	authRoute "github.com/nikhil/hackfest/internal/routes/Auth"
	registrationroutes "github.com/nikhil/hackfest/internal/routes/Registration"
	adminService "github.com/nikhil/hackfest/internal/service/admin"
	services "github.com/nikhil/hackfest/internal/service/auth"
	registrationService "github.com/nikhil/hackfest/internal/service/registration"
)

// RegisterAllRoutes builds the router with all area routes and the shared
// middleware chain.
func RegisterAllRoutes(db *sql.DB, cfg config.Config, provider payments.Provider, hub *events.Hub) *mux.Router {
	router := mux.NewRouter()

	router.Use(
		middleware.CORSMiddleware(cfg.AllowedOrigins),
		middleware.SecurityHeadersMiddleware,
		middleware.RateLimitMiddleware(rate.Limit(10), 20),
	)

	healthHandler := handlers.NewHealthHandler(db)
	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	registrationroutes.RegistrationRoutes(router, registrationService.NewRegistrationService(db, provider, hub, cfg))
	authRoute.RegisterAuthRoutes(router, services.NewAuthService(cfg))
	adminroutes.AdminRoutes(router, adminService.NewAdminService(db))
	RegisterWebSocketRoutes(router, hub)

	return router
}
