package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrDuplicateHandle.WrapMessage("account registration failed")

	// Wrapping keeps the sentinel reachable for errors.Is and the AppError
	// surface reachable for errors.As.
	assert.True(t, errors.Is(err, ErrDuplicateHandle))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_HANDLE", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidation.WithDetails("handle must be between 2 and 80 characters")

	assert.Equal(t, ErrValidation.ErrorCode(), err.ErrorCode())
	assert.Equal(t, ErrValidation.HTTPCode(), err.HTTPCode())
	assert.Equal(t, "handle must be between 2 and 80 characters", err.Details())
	// The shared sentinel itself is never mutated.
	assert.Empty(t, ErrValidation.Details())
}

func TestErrorTaxonomyIsDistinct(t *testing.T) {
	codes := map[string]bool{}
	for _, appErr := range []AppError{
		ErrValidation,
		ErrDuplicateHandle,
		ErrDuplicateEmail,
		ErrAccountNotFound,
		ErrInvalidCredentials,
		ErrAuthenticationRequired,
		ErrNotFound,
		ErrInternalError,
	} {
		assert.False(t, codes[appErr.ErrorCode()], "duplicate error code %s", appErr.ErrorCode())
		codes[appErr.ErrorCode()] = true
	}
}

func TestInvalidCredentialsMessageHidesTheField(t *testing.T) {
	// The message must not reveal whether the email or the secret was wrong.
	assert.NotContains(t, ErrInvalidCredentials.Message(), "not found")
	assert.NotContains(t, ErrInvalidCredentials.Message(), "unknown")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert accounts")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert accounts", err.Details())
	assert.True(t, errors.Is(err, cause))
}
