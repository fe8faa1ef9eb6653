package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_SignVerify(t *testing.T) {
	j := NewJWT("test-secret")

	token, err := j.Sign("8f1c9d2e-0a3b-4c5d-8e6f-7a8b9c0d1e2f")
	require.NoError(t, err)

	uid, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "8f1c9d2e-0a3b-4c5d-8e6f-7a8b9c0d1e2f", uid)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Sign("user-1")
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("test-secret")

	token, err := j.sign("user-1", -time.Minute)
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	j := NewJWT("test-secret")

	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := j.Verify(tok)
		assert.Error(t, err, "token %q should not verify", tok)
	}
}
