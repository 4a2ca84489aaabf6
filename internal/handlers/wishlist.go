package handlers

import (
	"net/http"

	"omnio_back_end/internal/commerce"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	Wishlists *commerce.WishlistService
}

func NewWishlistHandler(wishlists *commerce.WishlistService) *WishlistHandler {
	return &WishlistHandler{Wishlists: wishlists}
}

// GET /api/wishlist — liste de souhaits peuplée
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	wl, err := h.Wishlists.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": wl})
}

// POST /api/wishlist — ajoute un produit (idempotent)
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	var input struct {
		Product int64 `json:"product"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Product == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "produit manquant"})
		return
	}

	wl, err := h.Wishlists.Add(c.Request.Context(), userID, input.Product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": wl})
}

// DELETE /api/wishlist/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	productID, ok := paramInt64(c, "productId")
	if !ok {
		return
	}

	wl, err := h.Wishlists.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": wl})
}
