package handlers

import (
	"net/http"

	"omnio_back_end/internal/cache"
	"omnio_back_end/internal/models"
	"omnio_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type PageHandler struct {
	Store *store.Store
}

func NewPageHandler(s *store.Store) *PageHandler {
	return &PageHandler{Store: s}
}

// GET /api/homepage?locale=
func (h *PageHandler) GetHomepage(c *gin.Context) {
	page, err := h.Store.FindHomepage(c.Request.Context(), queryLocale(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page d'accueil introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page})
}

// GET /api/pages/:slug?locale= — page CMS avec ses sections typées
func (h *PageHandler) GetPageBySlug(c *gin.Context) {
	slug := c.Param("slug")
	locale := queryLocale(c)

	if page := cache.GetPageFromCache(slug, locale); page != nil {
		c.JSON(http.StatusOK, gin.H{"data": page})
		return
	}

	page, err := h.Store.FindPageBySlug(c.Request.Context(), slug, locale)
	if err != nil {
		respondError(c, err)
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page introuvable"})
		return
	}

	cache.SetPageInCache(page)
	c.JSON(http.StatusOK, gin.H{"data": page})
}

// POST /api/admin/pages
func (h *PageHandler) CreatePage(c *gin.Context) {
	var input models.Page
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}

	page, err := h.Store.CreatePage(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": page})
}

var pageUpdatableFields = []string{
	"title", "slug", "sections", "seo", "isHomepage", "publishedAt",
}

// PUT /api/admin/pages/:id
func (h *PageHandler) UpdatePage(c *gin.Context) {
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
	for _, field := range pageUpdatableFields {
		if v, exists := input[field]; exists {
			data[field] = v
		}
	}

	page, err := h.Store.UpdatePage(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err)
		return
	}

	cache.InvalidatePageCache(page.Slug, page.Locale)
	c.JSON(http.StatusOK, gin.H{"data": page})
}
