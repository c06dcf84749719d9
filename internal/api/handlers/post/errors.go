package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/core/posts"
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

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())

	case posts.IsConflict(err):
		writeError(w, http.StatusBadRequest, "Post with same title already exists")

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Post not found")

	case err == posts.ErrForbidden:
		writeError(w, http.StatusForbidden, "Not authorized")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

// writeJSON writes a success response body
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers already sent; just log
		log.Printf("Failed to encode response: %v", err)
	}
}
