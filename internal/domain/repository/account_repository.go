// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// Create must enforce the handle/email uniqueness invariants at the point of the
// durable write: a concurrent insert racing past the service-level pre-checks has
// to surface as the same per-field duplicate error, not as a raw driver error.
type AccountRepository interface {
	// FindByID retrieves a single account by its store-assigned ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (lower-cased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByHandle retrieves a single account by its exact handle.
	FindByHandle(ctx context.Context, handle string) (*entity.Account, error)

	// ListAll returns every account that exists at call time, each exactly once.
	// No ordering is guaranteed.
	ListAll(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account. The store assigns the ID and timestamps.
	Create(ctx context.Context, account *entity.Account) error
}
