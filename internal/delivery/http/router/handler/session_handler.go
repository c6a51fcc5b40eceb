// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/delivery/http/middleware"
	"atrium/internal/delivery/http/response"
	"atrium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginRequest is the payload for POST /auth/login.
type loginRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required"`
}

// loginResponse carries the session token alongside the account.
type loginResponse struct {
	Token   string       `json:"token"`
	Account *AccountView `json:"account"`
}

// SessionHandler holds dependencies for login/logout/session handlers.
type SessionHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.AuthUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the login request. On failure the client's prior session, if
// any, is left untouched.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:  req.Email,
		Secret: req.Secret,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Token:   output.Token,
		Account: NewAccountView(output.Account),
	}, "Login successful")
}

// Logout tears down the session carried by the request. Logging out an
// anonymous client succeeds: the operation is idempotent.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), middleware.BearerToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me returns the account the current session authenticates.
// The route is guarded, so the account is always present.
func (h *SessionHandler) Me(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Not logged in")
	}

	return response.Success(c, http.StatusOK, NewAccountView(account), "Account resolved successfully")
}

// Dashboard is the protected landing page analogue: a guarded endpoint that
// greets the resolved account.
func (h *SessionHandler) Dashboard(c echo.Context) error {
	account := middleware.AccountFromContext(c)
	if account == nil {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Not logged in")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Welcome, " + account.Handle + "!",
	}, "Dashboard retrieved successfully")
}

// Home is the public landing endpoint.
func Home(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Welcome to Atrium",
	}, "OK")
}
