package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken is the decoded content of a session bearer token: which session
// record it names and which account that session authenticates. The token
// itself is opaque to clients.
type SessionToken struct {
	SessionID uuid.UUID
	AccountID uuid.UUID
}

// SessionTokenService mints and decodes the bearer tokens that carry a session
// between requests. The token only names a session; whether that session is
// still alive is decided against the store on every request.
type SessionTokenService interface {
	// Issue creates a new bearer token for the given session and account.
	// It returns the token string handed to the client and the digest under
	// which the session is persisted.
	Issue(sessionID, accountID uuid.UUID) (token string, tokenHash string, err error)

	// Decode validates a bearer token's signature and expiry and returns its
	// content plus the digest used to look the session up. A token that fails
	// validation decodes to an error; callers treat that as an anonymous request.
	Decode(token string) (*SessionToken, string, error)

	// SessionTTL returns how long issued sessions live without a logout.
	SessionTTL() time.Duration
}
