package adminroutes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nikhil/hackfest/internal/middleware"
	adminService "github.com/nikhil/hackfest/internal/service/admin"
)

func AdminRoutes(router *mux.Router, service *adminService.AdminService) {
	protectedRouter := router.PathPrefix("/admin").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware, middleware.ResponseWrapperMiddleware)
	protectedRouter.HandleFunc("/teams", service.GetTeams).Methods(http.MethodGet, http.MethodOptions)
	protectedRouter.HandleFunc("/reconciliation", service.GetReconciliation).Methods(http.MethodGet, http.MethodOptions)
}
