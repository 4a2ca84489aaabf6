package handlers

import (
	"log"
	"net/http"

	"omnio_back_end/internal/commerce"

	"github.com/gin-gonic/gin"
)

// respondError traduit une erreur du domaine en réponse HTTP
func respondError(c *gin.Context, err error) {
	code := commerce.ErrorCode(err)
	if code == commerce.EINTERNAL {
		log.Println("❌ Erreur interne:", err)
	}
	c.JSON(statusFromCode(code), gin.H{"error": commerce.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case commerce.EINVALID:
		return http.StatusBadRequest
	case commerce.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case commerce.EFORBIDDEN:
		return http.StatusForbidden
	case commerce.ENOTFOUND:
		return http.StatusNotFound
	case commerce.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
