package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenVerifier_RoundTrip(t *testing.T) {
	v := NewTokenVerifier("test-secret")

	token, err := v.Issue("u1", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}

func TestTokenVerifier_WrongSecret(t *testing.T) {
	token, err := NewTokenVerifier("secret-a").Issue("u1", time.Minute)
	require.NoError(t, err)

	_, err = NewTokenVerifier("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifier_Expired(t *testing.T) {
	v := NewTokenVerifier("test-secret")

	token, err := v.Issue("u1", -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifier_Garbage(t *testing.T) {
	v := NewTokenVerifier("test-secret")

	_, err := v.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
