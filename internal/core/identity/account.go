package identity

import (
	"time"
)

// Account represents a registered author. The password hash never leaves
// this package's persistence boundary.
type Account struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

// RegisterRequest represents input for creating a new account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents credentials for an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token and the account it belongs to
type LoginResponse struct {
	Token   string   `json:"token"`
	Account *Account `json:"account"`
}
