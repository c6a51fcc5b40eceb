package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atrium/internal/delivery/http/validator"
	"atrium/internal/domain/entity"
	mockUsecase "atrium/internal/mocks/usecase"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAccountHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(uc, newDiscardLogger())

	account := &entity.Account{
		ID:             uuid.New(),
		Handle:         "alice",
		Email:          "alice@example.com",
		CredentialHash: "hashed-credential",
	}
	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Handle: "alice",
			Email:  "alice@example.com",
			Secret: "s3cret-password",
		}).
		Return(&usecase.RegisterOutput{Account: account}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/auth/register",
		`{"handle":"alice","email":"alice@example.com","secret":"s3cret-password"}`)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"handle":"alice"`)
	assert.Contains(t, rec.Body.String(), account.ID.String())
	// The credential hash must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "hashed-credential")
}

func TestAccountHandler_Register_InvalidJSON(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newTestContext(e, http.MethodPost, "/auth/register", `{not json`)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Register_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing handle", `{"email":"alice@example.com","secret":"s3cret"}`},
		{"handle too short", `{"handle":"a","email":"alice@example.com","secret":"s3cret"}`},
		{"invalid email", `{"handle":"alice","email":"not-an-email","secret":"s3cret"}`},
		{"missing secret", `{"handle":"alice","email":"alice@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			uc := mockUsecase.NewMockAccountUsecase(t)
			handler := NewAccountHandler(uc, newDiscardLogger())

			c, _ := newTestContext(e, http.MethodPost, "/auth/register", tt.body)

			err := handler.Register(c)

			require.Error(t, err)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestAccountHandler_GetAccount_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(uc, newDiscardLogger())

	account := &entity.Account{
		ID:     uuid.New(),
		Handle: "alice",
		Email:  "alice@example.com",
	}
	uc.EXPECT().GetAccount(mock.Anything, account.ID).Return(account, nil)

	c, rec := newTestContext(e, http.MethodGet, "/accounts/"+account.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(account.ID.String())

	err := handler.GetAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"handle":"alice"`)
}

func TestAccountHandler_GetAccount_InvalidID(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newTestContext(e, http.MethodGet, "/accounts/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_ListAccounts_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockAccountUsecase(t)
	handler := NewAccountHandler(uc, newDiscardLogger())

	accounts := []*entity.Account{
		{ID: uuid.New(), Handle: "alice", CredentialHash: "hash-a"},
		{ID: uuid.New(), Handle: "bob", CredentialHash: "hash-b"},
	}
	uc.EXPECT().ListAccounts(mock.Anything).Return(accounts, nil)

	c, rec := newTestContext(e, http.MethodGet, "/accounts", "")

	err := handler.ListAccounts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"handle":"alice"`)
	assert.Contains(t, rec.Body.String(), `"handle":"bob"`)
	assert.NotContains(t, rec.Body.String(), "hash-a")
	assert.NotContains(t, rec.Body.String(), "hash-b")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
