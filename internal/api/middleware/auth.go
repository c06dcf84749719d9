package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

// Context keys for storing the authenticated account
type contextKey string

const accountIDKey contextKey = "account_id"

// SessionName is the cookie session used as a fallback identity source
// for browser clients that don't send a Bearer token.
const SessionName = "inkwell_session"

// TokenVerifier validates a bearer token and returns the account ID it
// was issued to
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// AuthMiddleware resolves the requester identity from either a Bearer
// token or the session cookie set at login
type AuthMiddleware struct {
	verifier TokenVerifier
	store    sessions.Store
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		store:    store,
	}
}

// RequireAuth ensures the request carries a valid identity.
// If not authenticated, returns 401. If authenticated, injects the account
// ID into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := m.resolve(r)
		if accountID == "" {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the identity if present but doesn't require it.
// Used for endpoints that serve both authenticated and anonymous callers.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := m.resolve(r)
		if accountID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve extracts the account ID from the Authorization header, falling
// back to the session cookie. Returns "" for anonymous requests.
func (m *AuthMiddleware) resolve(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		accountID, err := m.verifier.VerifyToken(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=invalid_token ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			return ""
		}
		return accountID
	}

	if m.store != nil {
		// An undecodable cookie returns a fresh session; treat as anonymous
		session, _ := m.store.Get(r, SessionName)
		if accountID, ok := session.Values["account_id"].(string); ok {
			return accountID
		}
	}

	return ""
}

// GetAccountID extracts the authenticated account ID from the request.
// Returns empty string if not authenticated.
func GetAccountID(r *http.Request) string {
	accountID, _ := r.Context().Value(accountIDKey).(string)
	return accountID
}

// SetTestAccountID sets the account ID in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
