// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyAccount is the echo context key under which the authenticated
// account is stored by Authenticate.
const ContextKeyAccount = "account"

// AuthMiddleware guards routes that require an authenticated session.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the session carried by the request and requires it to
// name a live account. The account is loaded from the store on every request,
// so a deleted account or a revoked session is anonymous immediately.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, err := m.authUC.CurrentAccount(c.Request().Context(), BearerToken(c))
		if err != nil {
			return err
		}
		if account == nil {
			return domainerrors.ErrAuthenticationRequired
		}

		c.Set(ContextKeyAccount, account)

		return next(c)
	}
}

// AccountFromContext returns the account placed on the context by
// Authenticate, or nil on unguarded routes.
func AccountFromContext(c echo.Context) *entity.Account {
	account, _ := c.Get(ContextKeyAccount).(*entity.Account)

	return account
}

// BearerToken extracts the session token from the Authorization header.
// Returns "" for anonymous requests.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}
