package cache

import (
	"context"
	"encoding/json"
	"time"

	"omnio_back_end/internal/database"
	"omnio_back_end/internal/models"
)

const (
	ProductCacheTTL    = 10 * time.Minute
	CategoriesCacheTTL = time.Hour
	PageCacheTTL       = 10 * time.Minute
)

// GetProductFromCache récupère un produit (slug+locale) depuis Redis
func GetProductFromCache(slug, locale string) *models.Product {
	ctx := context.Background()
	data, err := database.Redis.Get(ctx, productKey(slug, locale)).Result()
	if err != nil {
		return nil
	}
	var product models.Product
	if json.Unmarshal([]byte(data), &product) != nil {
		return nil
	}
	return &product
}

// SetProductInCache met un produit en cache
func SetProductInCache(product *models.Product) {
	ctx := context.Background()
	if data, err := json.Marshal(product); err == nil {
		database.Redis.Set(ctx, productKey(product.Slug, product.Locale), data, ProductCacheTTL)
	}
}

// InvalidateProductCache invalide le cache d'un produit (toutes variantes
// de slug confondues : on supprime par slug+locale connus).
func InvalidateProductCache(slug, locale string) {
	ctx := context.Background()
	database.Redis.Del(ctx, productKey(slug, locale))
}

func productKey(slug, locale string) string {
	return "product:" + locale + ":" + slug
}

// GetCategoriesFromCache récupère l'arbre de catégories d'une locale
func GetCategoriesFromCache(locale string) []models.Category {
	ctx := context.Background()
	data, err := database.Redis.Get(ctx, "categories:all:"+locale).Result()
	if err != nil {
		return nil
	}
	var categories []models.Category
	if json.Unmarshal([]byte(data), &categories) != nil {
		return nil
	}
	return categories
}

// SetCategoriesInCache met l'arbre de catégories en cache
func SetCategoriesInCache(locale string, categories []models.Category) {
	ctx := context.Background()
	if data, err := json.Marshal(categories); err == nil {
		database.Redis.Set(ctx, "categories:all:"+locale, data, CategoriesCacheTTL)
	}
}

// InvalidateCategoriesCache invalide l'arbre d'une locale
func InvalidateCategoriesCache(locale string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "categories:all:"+locale)
}

// GetPageFromCache récupère une page CMS depuis Redis
func GetPageFromCache(slug, locale string) *models.Page {
	ctx := context.Background()
	data, err := database.Redis.Get(ctx, "page:"+locale+":"+slug).Result()
	if err != nil {
		return nil
	}
	var page models.Page
	if json.Unmarshal([]byte(data), &page) != nil {
		return nil
	}
	return &page
}

// SetPageInCache met une page en cache
func SetPageInCache(page *models.Page) {
	ctx := context.Background()
	if data, err := json.Marshal(page); err == nil {
		database.Redis.Set(ctx, "page:"+page.Locale+":"+page.Slug, data, PageCacheTTL)
	}
}

// InvalidatePageCache invalide une page
func InvalidatePageCache(slug, locale string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "page:"+locale+":"+slug)
}
