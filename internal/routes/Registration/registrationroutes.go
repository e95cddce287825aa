package registrationroutes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nikhil/hackfest/internal/middleware"
	registrationService "github.com/nikhil/hackfest/internal/service/registration"
)

func RegistrationRoutes(router *mux.Router, service *registrationService.RegistrationService) {
	publicRouter := router.PathPrefix("/registration").Subrouter()
	publicRouter.Use(middleware.ResponseWrapperMiddleware)
	publicRouter.HandleFunc("/register", service.RegisterTeam).Methods(http.MethodPost, http.MethodOptions)
	publicRouter.HandleFunc("/verify-payment", service.VerifyPayment).Methods(http.MethodPost, http.MethodOptions)
}
