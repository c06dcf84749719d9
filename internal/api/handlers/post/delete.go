package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /api/posts/{id}
// Soft delete: the record stays in storage with deleted_at set. A second
// delete of the same post reports 404, same as a post that never existed.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	accountID := middleware.GetAccountID(r)
	if accountID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.DeletePost(r.Context(), posts.Viewer{AccountID: accountID}, id); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
