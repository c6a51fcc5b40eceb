// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atrium/internal/domain/entity"
)

// LoginInput defines the data required for a client to log in.
type LoginInput struct {
	Email  string
	Secret string
}

// LoginOutput returns the session token established by a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AuthUsecase defines the interface for session authentication operations.
//
// A client session is in one of two states: Anonymous, or Authenticated with a
// specific account ID. Login transitions Anonymous -> Authenticated; Logout
// transitions any state back to Anonymous and is idempotent.
type AuthUsecase interface {
	// Login verifies the submitted credentials and, if valid, establishes a
	// session bound to the account. A missing account and a wrong secret are
	// indistinguishable to the caller: both fail with invalid credentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout tears the session down. Unknown or malformed tokens are not an
	// error; the session is simply anonymous afterwards.
	Logout(ctx context.Context, token string) error

	// CurrentAccount resolves the session token back to the Account it
	// authenticates, re-reading the store on every call. A stale session
	// (expired, revoked, or pointing at a deleted account) resolves to
	// (nil, nil): anonymous, not an error.
	CurrentAccount(ctx context.Context, token string) (*entity.Account, error)
}
