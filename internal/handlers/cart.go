package handlers

import (
	"net/http"

	"omnio_back_end/internal/commerce"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Carts *commerce.CartService
}

func NewCartHandler(carts *commerce.CartService) *CartHandler {
	return &CartHandler{Carts: carts}
}

// GET /api/carts/me — panier de l'utilisateur connecté, null s'il n'existe pas
func (h *CartHandler) GetMyCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	cart, err := h.Carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if cart == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// POST /api/carts/me — retourne le panier existant ou en crée un
func (h *CartHandler) CreateMyCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	cart, err := h.Carts.GetOrCreateCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// Le produit est référencé soit par id numérique, soit par documentId
type addItemInput struct {
	Product           *int64 `json:"product"`
	ProductDocumentID string `json:"productDocumentId"`
	Quantity          int    `json:"quantity"`
}

// POST /api/carts/me/items — ajoute (ou fusionne) un article
func (h *CartHandler) AddCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}

	var ref commerce.ProductRef
	switch {
	case input.Product != nil:
		ref = commerce.ProductByID(*input.Product)
	case input.ProductDocumentID != "":
		ref = commerce.ProductByDocumentID(input.ProductDocumentID)
	}

	cart, err := h.Carts.AddItem(c.Request.Context(), userID, ref, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// PUT /api/carts/me/items/:id — met à jour la quantité, 0 supprime l'article
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}

	cart, err := h.Carts.UpdateItem(c.Request.Context(), userID, itemID, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// DELETE /api/carts/me/items/:id
func (h *CartHandler) DeleteCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	cart, err := h.Carts.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}
