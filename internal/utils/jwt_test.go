package utils

import (
	"testing"

	"omnio_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	user := models.User{ID: "user-1", Email: "jo@omnio.shop", Role: "customer"}
	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		require.Equal(t, jwt.SigningMethodHS256, token.Method)
		return []byte("secret-de-test"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user-1", claims["user_id"])
	require.Equal(t, "jo@omnio.shop", claims["email"])
	require.Equal(t, "customer", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
}

func TestGenerateJWTFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(models.User{ID: "user-1"})
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	tokenString, err := GenerateJWT(models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte("autre-secret"), nil
	})
	require.Error(t, err)
}
