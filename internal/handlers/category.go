package handlers

import (
	"net/http"

	"omnio_back_end/internal/cache"
	"omnio_back_end/internal/models"
	"omnio_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{Store: s}
}

// GET /api/categories?locale= — arbre à deux niveaux, mis en cache
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	locale := queryLocale(c)

	if categories := cache.GetCategoriesFromCache(locale); categories != nil {
		c.JSON(http.StatusOK, gin.H{"data": categories})
		return
	}

	categories, err := h.Store.FindCategories(c.Request.Context(), locale)
	if err != nil {
		respondError(c, err)
		return
	}

	tree := buildCategoryTree(categories)
	cache.SetCategoriesInCache(locale, tree)
	c.JSON(http.StatusOK, gin.H{"data": tree})
}

// buildCategoryTree rattache les sous-catégories à leur racine
func buildCategoryTree(categories []models.Category) []models.Category {
	roots := make([]models.Category, 0, len(categories))
	childrenOf := make(map[int64][]models.Category)

	for _, cat := range categories {
		if cat.ParentID != nil {
			childrenOf[*cat.ParentID] = append(childrenOf[*cat.ParentID], cat)
		}
	}
	for _, cat := range categories {
		if cat.ParentID == nil {
			cat.Children = childrenOf[cat.ID]
			roots = append(roots, cat)
		}
	}
	return roots
}

// GET /api/categories/:slug?locale=
func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.Store.FindCategoryBySlug(c.Request.Context(), c.Param("slug"), queryLocale(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "catégorie introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

// POST /api/admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.Category
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}

	category, err := h.Store.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidateCategoriesCache(category.Locale)
	c.JSON(http.StatusCreated, gin.H{"data": category})
}

var categoryUpdatableFields = []string{
	"name", "slug", "description", "image", "parentId", "isFeatured", "publishedAt",
}

// PUT /api/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
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
	for _, field := range categoryUpdatableFields {
		if v, exists := input[field]; exists {
			data[field] = v
		}
	}

	category, err := h.Store.UpdateCategory(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidateCategoriesCache(category.Locale)
	c.JSON(http.StatusOK, gin.H{"data": category})
}
