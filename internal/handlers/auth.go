package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikhil/hackfest/internal/httpx"
	services "github.com/nikhil/hackfest/internal/service/auth"
)

type AuthHandler struct {
	Service *services.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the admin authentication request
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials loginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		httpx.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := h.Service.Login(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httpx.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	httpx.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}
