package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Inkwell/internal/core/identity"
)

type postgresAccountRepo struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) identity.Repository {
	return &postgresAccountRepo{db: db}
}

// Create inserts a new account into the accounts table
func (r *postgresAccountRepo) Create(ctx context.Context, account *identity.Account) error {
	query := `
		INSERT INTO accounts (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "accounts_email_key") {
			return identity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByEmail retrieves an account by email
func (r *postgresAccountRepo) GetByEmail(ctx context.Context, email string) (*identity.Account, error) {
	account := &identity.Account{}
	query := `SELECT id, name, email, password_hash, created_at FROM accounts WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, identity.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

// GetByID retrieves an account by ID
func (r *postgresAccountRepo) GetByID(ctx context.Context, id string) (*identity.Account, error) {
	account := &identity.Account{}
	query := `SELECT id, name, email, password_hash, created_at FROM accounts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, identity.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}
