package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"Inkwell/internal/api/handlers/auth"
	"Inkwell/internal/core/identity"
)

// RegisterAuthRoutes registers the account endpoints on the router
func RegisterAuthRoutes(r chi.Router, service identity.Service, store sessions.Store) {
	registerHandler := auth.NewRegisterHandler(service)
	loginHandler := auth.NewLoginHandler(service, store)

	r.Post("/api/auth/register", registerHandler.HandleRegister)
	r.Post("/api/auth/login", loginHandler.HandleLogin)
}
