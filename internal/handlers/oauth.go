package handlers

import (
	"context"
	"net/http"

	"omnio_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

type ctxKey string

const ProviderKey ctxKey = "provider"

// GET /api/auth/:provider — démarre le flux OAuth via goth
func (h *AuthHandler) BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// GET /api/auth/:provider/callback — termine le flux, crée l'utilisateur
// au premier passage et émet notre JWT
func (h *AuthHandler) CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if gothUser.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "le provider n'a pas fourni d'email"})
		return
	}

	user, err := h.Store.UpsertOAuthUser(c.Request.Context(), gothUser.Email, gothUser.Name, provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt": token, "user": user})
}
