package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, ComparePassword(hash, "secret1"))
	assert.False(t, ComparePassword(hash, "secret2"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestComparePassword_BadHash(t *testing.T) {
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "secret1"))
}
