package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	assert.NoError(t, hasher.Verify("secret", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}

func TestBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("secret", hash))
}
