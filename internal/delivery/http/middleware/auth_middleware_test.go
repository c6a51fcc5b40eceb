package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	mockUsecase "atrium/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	account := &entity.Account{ID: uuid.New(), Handle: "alice"}
	authUC.EXPECT().CurrentAccount(mock.Anything, "issued-token").Return(account, nil)

	c, _ := newAuthTestContext("Bearer issued-token")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, account, AccountFromContext(c))

		return nil
	}

	err := m.Authenticate(next)(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_AnonymousSession(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	// A stale or missing session resolves to nil without error; the guard
	// turns that into an authentication-required failure.
	authUC.EXPECT().CurrentAccount(mock.Anything, "stale-token").Return(nil, nil)

	c, _ := newAuthTestContext("Bearer stale-token")

	next := func(c echo.Context) error {
		t.Fatal("next should not be called for an anonymous session")

		return nil
	}

	err := m.Authenticate(next)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthMiddleware_Authenticate_InfrastructureError(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	wantErr := errors.New("connection refused")
	authUC.EXPECT().CurrentAccount(mock.Anything, "issued-token").Return(nil, wantErr)

	c, _ := newAuthTestContext("Bearer issued-token")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	// Infrastructure failures are not disguised as authentication failures.
	assert.False(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer issued-token", "issued-token"},
		{"missing scheme", "issued-token", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthTestContext(tt.header)

			assert.Equal(t, tt.want, BearerToken(c))
		})
	}
}
