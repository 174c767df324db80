package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret_key_for_tests", time.Hour)

	token, err := tm.GenerateAccessToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	tm := NewTokenManager("secret_one", time.Hour)
	other := NewTokenManager("secret_two", time.Hour)

	token, err := tm.GenerateAccessToken("user-123")
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	tm := NewTokenManager("secret_key_for_tests", -time.Minute)

	token, err := tm.GenerateAccessToken("user-123")
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	tm := NewTokenManager("secret_key_for_tests", time.Hour)

	_, err := tm.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ParseAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
