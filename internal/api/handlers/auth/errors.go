package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/core/identity"
)

type errorResponse struct {
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps identity service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case identity.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, identity.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered")

	case errors.Is(err, identity.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")

	default:
		log.Printf("Unexpected error in auth handler: %v", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

// writeJSON writes a success response body
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
