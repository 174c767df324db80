package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestPasswordHashing_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same_password")
	require.NoError(t, err)
	second, err := HashPassword("same_password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
