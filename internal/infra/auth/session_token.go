// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"atrium/config"
	"atrium/internal/domain/service"
	"atrium/internal/errors"
)

const defaultSessionTTL = 24 * time.Hour

// sessionTokenService implements SessionTokenService with HS256-signed JWTs.
// The signed claims name the session ("sid") and the account ("sub"); a random
// nonce ("rnd") makes the token's digest unguessable even with a known secret.
type sessionTokenService struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &sessionTokenService{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: ttl,
	}, nil
}

// Issue creates a signed bearer token for the session and returns it together
// with the SHA-256 digest under which the session row is stored.
func (s *sessionTokenService) Issue(sessionID, accountID uuid.UUID) (string, string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", "", errors.Wrap(err, "failed to generate session nonce")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"sub": accountID.String(),
		"rnd": hex.EncodeToString(nonce),
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign session token")
	}

	return token, HashToken(token), nil
}

// Decode validates a bearer token and extracts the session and account IDs.
func (s *sessionTokenService) Decode(tokenString string) (*service.SessionToken, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, "", errors.New("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", errors.New("failed to parse session token claims")
	}

	sidStr, _ := claims["sid"].(string)
	sessionID, err := uuid.Parse(sidStr)
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid session id in token")
	}

	subStr, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(subStr)
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid account id in token")
	}

	return &service.SessionToken{
		SessionID: sessionID,
		AccountID: accountID,
	}, HashToken(tokenString), nil
}

// SessionTTL returns how long issued sessions live without a logout.
func (s *sessionTokenService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// HashToken returns the hex SHA-256 digest of a raw bearer token. Only the
// digest is persisted, so the stored sessions table never contains a usable token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
