package auth

import (
	"testing"

	"atrium/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: cost,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, hasher.Check("s3cret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)

	// Equal inputs must not produce equal hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("s3cret-password", first))
	assert.True(t, hasher.Check("s3cret-password", second))
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("s3cret-password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("s3cret-password", ""))
}

func TestNewBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	// Out-of-range or missing cost settings fall back to the bcrypt default
	// rather than failing construction.
	for _, cfg := range []*config.Config{
		newTestHasherConfig(0),
		newTestHasherConfig(100),
		{},
		nil,
	} {
		hasher := NewBcryptHasher(cfg)

		hash, err := hasher.Hash("s3cret-password")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	}
}
