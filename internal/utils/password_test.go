package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("mauvais mot de passe", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("secret", "$2a$10$abcdef")
	require.Error(t, err)

	_, err = VerifyPassword("secret", "pas-un-hash")
	require.Error(t, err)
}
