package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/posts"
)

// GetHandler handles single-post reads by slug
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/posts/{slug}
// Public endpoint; only published, live posts are reachable. Drafts return
// 404 for everyone, including their author.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "slug is required")
		return
	}

	found, err := h.service.GetPostBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, found)
}
