// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Handle string
	Email  string
	Secret string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type AccountUsecase interface {
	// Register creates a new account: validates input, enforces handle/email
	// uniqueness, hashes the secret, and persists the account atomically.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListAccounts returns all registered accounts.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
}
