package handlers

import (
	"database/sql"
	"net/http"

	"github.com/nikhil/hackfest/internal/httpx"
)

// HealthHandler reports process liveness and database reachability.
type HealthHandler struct {
	DB *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{DB: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	code := http.StatusOK
	if err := h.DB.PingContext(r.Context()); err != nil {
		dbStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	httpx.RespondWithJSON(w, code, map[string]interface{}{
		"success":  code == http.StatusOK,
		"status":   "up",
		"database": dbStatus,
	})
}
