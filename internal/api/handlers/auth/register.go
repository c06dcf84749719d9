package auth

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/core/identity"
)

// RegisterHandler handles account registration
type RegisterHandler struct {
	service identity.Service
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service identity.Service) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister handles POST /api/auth/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req identity.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}
