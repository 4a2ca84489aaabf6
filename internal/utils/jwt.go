package utils

import (
	"errors"
	"os"
	"time"

	"omnio_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret : pas de secret, pas de token. Aucune valeur par défaut.
var ErrMissingSecret = errors.New("JWT_SECRET non défini")

func GenerateJWT(user models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", ErrMissingSecret
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
