package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/identity"
)

// LoginHandler handles login requests
type LoginHandler struct {
	service identity.Service
	store   sessions.Store
}

// NewLoginHandler creates a new login handler.
// store may be nil when cookie sessions are disabled (API-only clients).
func NewLoginHandler(service identity.Service, store sessions.Store) *LoginHandler {
	return &LoginHandler{
		service: service,
		store:   store,
	}
}

// HandleLogin handles POST /api/auth/login
// Returns a bearer token and, for browser clients, also sets a session
// cookie the auth middleware accepts as a fallback.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req identity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.store != nil {
		session, _ := h.store.Get(r, middleware.SessionName)
		session.Values["account_id"] = resp.Account.ID
		if err := session.Save(r, w); err != nil {
			// Token auth still works without the cookie
			log.Printf("Failed to save session cookie: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
