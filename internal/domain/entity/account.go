// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole identity record in the system. The Handle and Email
// fields are unique across all accounts; CredentialHash stores the bcrypt
// output and is never exposed to callers or logs.
type Account struct {
	ID             uuid.UUID // Store-assigned identifier, immutable, never reused.
	Handle         string    // Public display/login name, unique, exact-match.
	Email          string    // Login identifier, unique, stored lower-cased.
	CredentialHash string    // Opaque one-way hash of the secret. Set at creation only.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}
