package handler

import (
	"net/http"
	"testing"

	"atrium/internal/delivery/http/middleware"
	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	mockUsecase "atrium/internal/mocks/usecase"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	account := &entity.Account{
		ID:             uuid.New(),
		Handle:         "alice",
		Email:          "alice@example.com",
		CredentialHash: "hashed-credential",
	}
	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Email:  "alice@example.com",
			Secret: "s3cret-password",
		}).
		Return(&usecase.LoginOutput{Token: "issued-token", Account: account}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","secret":"s3cret-password"}`)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"issued-token"`)
	assert.Contains(t, rec.Body.String(), `"handle":"alice"`)
	assert.NotContains(t, rec.Body.String(), "hashed-credential")
}

func TestSessionHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	wantErr := domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).Return(nil, wantErr)

	c, _ := newTestContext(e, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","secret":"wrong-password"}`)

	err := handler.Login(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionHandler_Logout_WithBearerToken(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	uc.EXPECT().Logout(mock.Anything, "issued-token").Return(nil)

	c, rec := newTestContext(e, http.MethodPost, "/auth/logout", "")
	c.Request().Header.Set("Authorization", "Bearer issued-token")

	err := handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_Logout_Anonymous(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	// No Authorization header: logout still succeeds.
	uc.EXPECT().Logout(mock.Anything, "").Return(nil)

	c, rec := newTestContext(e, http.MethodPost, "/auth/logout", "")

	err := handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_Me(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	account := &entity.Account{ID: uuid.New(), Handle: "alice", Email: "alice@example.com"}

	c, rec := newTestContext(e, http.MethodGet, "/auth/me", "")
	c.Set(middleware.ContextKeyAccount, account)

	err := handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"handle":"alice"`)
}

func TestSessionHandler_Me_WithoutAccount(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	c, rec := newTestContext(e, http.MethodGet, "/auth/me", "")

	err := handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTHENTICATION_REQUIRED")
}

func TestSessionHandler_Dashboard(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAuthUsecase(t)
	handler := NewSessionHandler(uc, newDiscardLogger())

	account := &entity.Account{ID: uuid.New(), Handle: "alice"}

	c, rec := newTestContext(e, http.MethodGet, "/dashboard", "")
	c.Set(middleware.ContextKeyAccount, account)

	err := handler.Dashboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome, alice!")
}

func TestHome(t *testing.T) {
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/", "")

	err := Home(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
