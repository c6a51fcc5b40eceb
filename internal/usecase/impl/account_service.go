// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	handleMinLength = 2
	handleMaxLength = 80
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	handle := strings.TrimSpace(input.Handle)
	email := NormalizeEmail(input.Email)

	if err := validateRegistration(handle, email, input.Secret); err != nil {
		return nil, err
	}

	srv.logger.Info("Starting account registration", "handle", handle)

	// Hash outside the transaction: bcrypt is deliberately slow and must not
	// hold a database transaction open.
	credentialHash, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		srv.logger.Error("Failed to hash secret during registration", "error", err)

		return nil, domainerrors.ErrCredentialHashFailed.WrapMessage("failed to hash secret")
	}

	var registered *entity.Account

	// Pre-check both uniqueness invariants, then insert, inside one
	// transaction. The pre-checks exist to report the right field; the insert
	// still relies on the store's unique indexes for the race window, which
	// surface as the same per-field duplicate errors.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		_, err := accountRepo.FindByHandle(ctx, handle)
		if err == nil {
			return domainerrors.ErrDuplicateHandle.WrapMessage("account registration failed")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check handle uniqueness")
		}

		_, err = accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("account registration failed")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		newAccount := &entity.Account{
			Handle:         handle,
			Email:          email,
			CredentialHash: credentialHash,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.WithStack(err)
		}
		registered = newAccount

		return nil
	})

	if err != nil {
		srv.logger.Warn("Account registration failed", "handle", handle, "error", err)

		return nil, err
	}
	srv.logger.Debug("Account registered successfully", "accountID", registered.ID)

	return &usecase.RegisterOutput{Account: registered}, nil
}

// GetAccount retrieves an account by its ID.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("get account failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// ListAccounts returns all registered accounts.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// validateRegistration enforces the input rules the core owns: handle length,
// email shape, non-empty secret. Richer format validation happens at the HTTP
// boundary; these checks hold for any transport.
func validateRegistration(handle, email, secret string) error {
	if n := utf8.RuneCountInString(handle); n < handleMinLength || n > handleMaxLength {
		return domainerrors.ErrValidation.WithDetails("handle must be between 2 and 80 characters")
	}
	if email == "" || !strings.Contains(email, "@") {
		return domainerrors.ErrValidation.WithDetails("a valid email address is required")
	}
	if secret == "" {
		return domainerrors.ErrValidation.WithDetails("secret must not be empty")
	}

	return nil
}

// NormalizeEmail applies the uniqueness policy for email addresses: trimmed
// and lower-cased, so lookups and the unique index agree on case-insensitivity.
// Handles are intentionally exact-match and only trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
