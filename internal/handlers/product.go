package handlers

import (
	"net/http"

	"omnio_back_end/internal/cache"
	"omnio_back_end/internal/models"
	"omnio_back_end/internal/services"
	"omnio_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type ProductHandler struct {
	Store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{Store: s}
}

// GET /api/products?locale=&category=&featured=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	locale := queryLocale(c)

	filter := store.ProductFilter{Locale: locale, PublishedOnly: true}

	if slug := c.Query("category"); slug != "" {
		category, err := h.Store.FindCategoryBySlug(ctx, slug, locale)
		if err != nil {
			respondError(c, err)
			return
		}
		if category == nil {
			c.JSON(http.StatusOK, gin.H{"data": []models.Product{}})
			return
		}
		filter.CategoryID = category.ID
	}

	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	products, err := h.Store.FindProducts(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// GET /api/products/search?q=&locale=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre q manquant"})
		return
	}

	results, err := services.SearchProducts(query, queryLocale(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"data": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": results})
}

// GET /api/products/:slug?locale= — détail produit, mis en cache
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	locale := queryLocale(c)

	if product := cache.GetProductFromCache(slug, locale); product != nil {
		c.JSON(http.StatusOK, gin.H{"data": product})
		return
	}

	product, err := h.Store.FindProductBySlug(c.Request.Context(), slug, locale)
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "produit introuvable"})
		return
	}

	if product.CategoryID != 0 {
		product.Category, _ = h.Store.FindCategoryByID(c.Request.Context(), product.CategoryID)
	}

	cache.SetProductInCache(product)
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// POST /api/admin/products — création (garde de slug appliquée par le store)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}

	product, err := h.Store.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	services.IndexProduct(*product)
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// Champs modifiables par l'admin, le reste est géré par le store
var productUpdatableFields = []string{
	"name", "slug", "brand", "description", "features", "specifications",
	"price", "originalPrice", "image", "images", "inStock", "isFeatured",
	"categoryId", "publishedAt",
}

// PUT /api/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}

	data := bson.M{}
	for _, field := range productUpdatableFields {
		if v, exists := input[field]; exists {
			data[field] = v
		}
	}

	product, err := h.Store.UpdateProduct(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidateProductCache(product.Slug, product.Locale)
	if product.PublishedAt == nil {
		// dépublié : la variante sort de l'index de recherche
		services.RemoveProduct(product.DocumentID, product.Locale)
	} else {
		services.IndexProduct(*product)
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// POST /api/admin/products/:id/image — upload MinIO puis mise à jour du
// produit avec l'URL publique
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fichier image manquant"})
		return
	}

	url, err := services.UploadFile(services.ImageBucket(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "échec de l'upload"})
		return
	}

	product, err := h.Store.UpdateProduct(c.Request.Context(), id, bson.M{"image": url})
	if err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidateProductCache(product.Slug, product.Locale)
	c.JSON(http.StatusOK, gin.H{"data": product})
}
