package post

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/posts
// Creates a new post owned by the authenticated caller.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size; 1MB is plenty for a post
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large (max 1MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Author comes from the auth middleware, never the payload
	accountID := middleware.GetAccountID(r)
	if accountID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	created, err := h.service.CreatePost(r.Context(), posts.Viewer{AccountID: accountID}, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
