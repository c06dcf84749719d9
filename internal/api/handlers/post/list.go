package post

import (
	"net/http"
	"strconv"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// ListHandler handles listing posts
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts?page={n}&limit={n}&search={q}&tag={t}&author={id}&status={s}
// Works for both anonymous and authenticated callers; visibility rules
// differ between the two (anonymous callers only ever see published posts).
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := posts.ListParams{
		Search: query.Get("search"),
		Tag:    query.Get("tag"),
		Author: query.Get("author"),
		Status: query.Get("status"),
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid page parameter: must be an integer")
			return
		}
		params.Page = page
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid limit parameter: must be an integer")
			return
		}
		params.Limit = limit
	}

	viewer := posts.Viewer{AccountID: middleware.GetAccountID(r)}

	results, err := h.service.ListPosts(r.Context(), viewer, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if results == nil {
		results = []*posts.Post{}
	}

	writeJSON(w, http.StatusOK, results)
}
