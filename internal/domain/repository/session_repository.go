// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the given token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the standard operations for session persistence.
type SessionRepository interface {
	// Create persists a new session record, representing a logged-in client.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the digest of its bearer token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session by its token digest, ending it.
	// Deleting a session that does not exist is not an error (logout is idempotent).
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAccountID removes every session belonging to an account.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}
