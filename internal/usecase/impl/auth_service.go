// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokenSvc    service.SessionTokenService
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	hasher service.PasswordHasher,
	tokenSvc service.SessionTokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:   txManager,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// Login verifies credentials and establishes a new session on success.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := NormalizeEmail(input.Email)
	srv.logger.Debug("Starting login", "email", email)

	var loggedIn *entity.Account
	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		account, err := accountRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// Same failure as a wrong secret: no account enumeration.
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if !srv.hasher.Check(input.Secret, account.CredentialHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// The session ID is minted here so the token can name it; the store
		// keeps only the token digest.
		sessionID := uuid.New()
		issued, tokenHash, err := srv.tokenSvc.Issue(sessionID, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue session token")
		}

		session := &entity.Session{
			ID:        sessionID,
			AccountID: account.ID,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(srv.tokenSvc.SessionTTL()),
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.WithStack(err)
		}

		loggedIn = account
		token = issued

		return nil
	})

	if err != nil {
		srv.logger.Debug("Login failed", "email", email, "error", err)

		return nil, err
	}
	srv.logger.Info("Login successful", "accountID", loggedIn.ID)

	return &usecase.LoginOutput{
		Token:   token,
		Account: loggedIn,
	}, nil
}

// Logout deletes the session named by the token. It is idempotent: tokens that
// are malformed, expired, or already logged out all leave the client anonymous
// without error.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	_, tokenHash, err := srv.tokenSvc.Decode(token)
	if err != nil {
		// Even if the token no longer validates, delete whatever session its
		// digest names so an expired token cannot strand a live row.
		srv.logger.Warn("Logout with invalid token", "error", err)
		tokenHash = digest(token)
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		srv.logger.Error("Failed to delete session on logout", "error", err)

		return errors.Wrap(err, "failed to delete session")
	}
	srv.logger.Debug("Logged out")

	return nil
}

// CurrentAccount is the session loader: it resolves a token to the live
// Account it authenticates, or to nil when the session is anonymous or stale.
func (srv *authService) CurrentAccount(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, nil
	}

	decoded, tokenHash, err := srv.tokenSvc.Decode(token)
	if err != nil {
		// Invalid or expired token: anonymous, not an error.
		return nil, nil
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// Logged out or revoked.
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.Expired(time.Now()) {
		// Best-effort cleanup; an expired session is anonymous regardless.
		if delErr := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); delErr != nil {
			srv.logger.Warn("Failed to delete expired session", "error", delErr)
		}

		return nil, nil
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// The account is gone; the session is stale, not broken.
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve session account")
	}

	// The token's account claim must agree with the stored session.
	if decoded.AccountID != account.ID {
		srv.logger.Warn("Session token account mismatch", "sessionID", session.ID)

		return nil, nil
	}

	return account, nil
}

// digest mirrors the token-at-rest hashing used when sessions are stored, for
// the logout path where the token no longer decodes.
func digest(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
