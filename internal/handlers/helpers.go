package handlers

import (
	"net/http"
	"strconv"

	"omnio_back_end/internal/commerce"

	"github.com/gin-gonic/gin"
)

// paramInt64 lit un paramètre de chemin numérique, répond 400 sinon
func paramInt64(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant invalide"})
		return 0, false
	}
	return v, true
}

// queryLocale lit ?locale= avec repli sur la locale par défaut
func queryLocale(c *gin.Context) string {
	if l := c.Query("locale"); l != "" {
		return l
	}
	return commerce.DefaultLocale
}
