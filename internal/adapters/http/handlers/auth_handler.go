package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

const msgRegistered = "User registered successfully!"

// AuthHandler handles the unauthenticated /api/auth endpoints.
type AuthHandler struct {
	svc ports.AccountService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AccountService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !bind(w, r, &req) {
		return
	}

	if err := h.svc.Register(r.Context(), req.Username, req.Password); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.MessageResponse{Message: msgRegistered})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !bind(w, r, &req) {
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TokenResponse{Token: token})
}
