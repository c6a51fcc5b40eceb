package auth

import (
	"testing"
	"time"

	"atrium/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SessionTTL: ttl,
		},
	}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	svc, err := NewSessionTokenService(newTestTokenConfig("", time.Hour))

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewSessionTokenService_TTL(t *testing.T) {
	svc, err := NewSessionTokenService(newTestTokenConfig("test-secret", 2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.SessionTTL())

	// Zero TTL falls back to the default.
	svc, err = NewSessionTokenService(newTestTokenConfig("test-secret", 0))
	require.NoError(t, err)
	assert.Equal(t, defaultSessionTTL, svc.SessionTTL())
}

func TestSessionTokenService_IssueAndDecode(t *testing.T) {
	svc, err := NewSessionTokenService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	sessionID := uuid.New()
	accountID := uuid.New()

	token, tokenHash, err := svc.Issue(sessionID, accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, HashToken(token), tokenHash)
	// The persisted digest must never be the token itself.
	assert.NotEqual(t, token, tokenHash)

	decoded, decodedHash, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, decoded.SessionID)
	assert.Equal(t, accountID, decoded.AccountID)
	assert.Equal(t, tokenHash, decodedHash)
}

func TestSessionTokenService_TokensAreUnique(t *testing.T) {
	svc, err := NewSessionTokenService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	sessionID := uuid.New()
	accountID := uuid.New()

	first, firstHash, err := svc.Issue(sessionID, accountID)
	require.NoError(t, err)
	second, secondHash, err := svc.Issue(sessionID, accountID)
	require.NoError(t, err)

	// The nonce makes every issued token, and therefore every stored digest,
	// distinct even for identical claims.
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, firstHash, secondHash)
}

func TestSessionTokenService_DecodeRejectsWrongSecret(t *testing.T) {
	issuer, err := NewSessionTokenService(newTestTokenConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewSessionTokenService(newTestTokenConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, _, err := issuer.Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	decoded, _, err := verifier.Decode(token)
	require.Error(t, err)
	assert.Nil(t, decoded)
}

func TestSessionTokenService_DecodeRejectsGarbage(t *testing.T) {
	svc, err := NewSessionTokenService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		decoded, _, err := svc.Decode(token)
		require.Error(t, err)
		assert.Nil(t, decoded)
	}
}

func TestSessionTokenService_DecodeRejectsExpiredToken(t *testing.T) {
	svc := &sessionTokenService{
		secret:     []byte("test-secret"),
		sessionTTL: -time.Minute,
	}

	token, _, err := svc.Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	decoded, _, err := svc.Decode(token)
	require.Error(t, err)
	assert.Nil(t, decoded)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
