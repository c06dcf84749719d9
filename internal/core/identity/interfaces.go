package identity

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates a new account with a bcrypt-hashed password
	Register(ctx context.Context, req RegisterRequest) (*Account, error)

	// Login verifies credentials and issues a signed token
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// VerifyToken validates a token and returns the account ID it was
	// issued to. Returns ErrInvalidToken on any failure.
	VerifyToken(token string) (string, error)

	// GetAccount loads an account by ID
	GetAccount(ctx context.Context, id string) (*Account, error)
}

// Repository defines the data access interface for accounts
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}
