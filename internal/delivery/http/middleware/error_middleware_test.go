package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "atrium/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"duplicate handle", domainerrors.ErrDuplicateHandle, http.StatusConflict, "DUPLICATE_HANDLE"},
		{"duplicate email", domainerrors.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{"validation", domainerrors.ErrValidation.WithDetails("handle must be between 2 and 80 characters"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"invalid credentials", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"authentication required", domainerrors.ErrAuthenticationRequired, http.StatusUnauthorized, "AUTHENTICATION_REQUIRED"},
		{"account not found", domainerrors.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestErrorMiddleware()
			c, rec := newErrorTestContext()

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	// Errors wrapped with context on their way up still map to their own
	// status and business code.
	err := errors.Wrap(domainerrors.ErrDuplicateEmail.WrapMessage("account registration failed"), "register")

	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_EMAIL")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "binding failed"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	assert.Contains(t, rec.Body.String(), "binding failed")
}

func TestHandleHTTPError_UnexpectedError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Driver details stay out of the response body.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	c.Response().WriteHeader(http.StatusOK)

	m.HandleHTTPError(errors.New("late failure"), c)

	// Nothing further is written once the response is committed.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
