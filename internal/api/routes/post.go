package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/post"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// RegisterPostRoutes registers the post endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	// Public reads; list behavior differs for authenticated callers,
	// so it resolves identity optionally
	r.With(authMiddleware.OptionalAuth).Get("/api/posts", listHandler.HandleList)
	r.Get("/api/posts/{slug}", getHandler.HandleGet)

	// Mutations require authentication
	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/api/posts/{id}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{id}", deleteHandler.HandleDelete)
}
