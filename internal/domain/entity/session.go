// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated client session. It is created at login
// and destroyed at logout (or external expiry). The raw bearer token is never
// stored; TokenHash keeps a SHA-256 digest for lookup, so a leaked database
// dump cannot be replayed as live sessions.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	AccountID uuid.UUID // Links this session to the Account it authenticates.
	TokenHash string    // SHA-256 hash of the raw session token.
	ExpiresAt time.Time // After this instant the session resolves as anonymous.
	CreatedAt time.Time // When the session was established (login time).
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
