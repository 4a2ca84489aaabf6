package seed

import (
	"context"
	"log"

	"omnio_back_end/internal/models"
	"omnio_back_end/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

// Lien bidirectionnel entre une variante canonique et sa traduction :
// chacune référence l'autre dans localizations, et les champs non
// localisés sont recopiés du canonique vers la traduction pour qu'ils
// ne divergent pas. Best-effort : en cas d'échec après retries on
// journalise et on continue, l'entité canonique n'est jamais corrompue.

func linkProductLocales(ctx context.Context, s *store.Store, canonical, translated *models.Product) {
	err := withRetry("lien locales produit "+canonical.DocumentID, func() error {
		_, err := s.UpdateProduct(ctx, canonical.ID, bson.M{
			"localizations": appendID(canonical.Localizations, translated.ID),
		})
		return err
	})
	if err != nil {
		log.Printf("⚠️ Lien locale non posé sur le produit canonique %d: %v", canonical.ID, err)
	}

	err = withRetry("lien locales produit "+translated.DocumentID, func() error {
		_, err := s.UpdateProduct(ctx, translated.ID, bson.M{
			"localizations": appendID(translated.Localizations, canonical.ID),
			// champs non localisés, alignés sur la variante canonique
			"price":         canonical.Price,
			"originalPrice": canonical.OriginalPrice,
			"image":         canonical.Image,
			"images":        canonical.Images,
			"inStock":       canonical.InStock,
			"isFeatured":    canonical.IsFeatured,
			"categoryId":    canonical.CategoryID,
		})
		return err
	})
	if err != nil {
		log.Printf("⚠️ Lien locale non posé sur la traduction %d: %v", translated.ID, err)
	}
}

func linkCategoryLocales(ctx context.Context, s *store.Store, canonical, translated *models.Category) {
	err := withRetry("lien locales catégorie "+canonical.DocumentID, func() error {
		_, err := s.UpdateCategory(ctx, canonical.ID, bson.M{
			"localizations": appendID(canonical.Localizations, translated.ID),
		})
		return err
	})
	if err != nil {
		log.Printf("⚠️ Lien locale non posé sur la catégorie canonique %d: %v", canonical.ID, err)
	}

	// parentId reste localisé : chaque variante pointe vers le parent
	// de sa propre locale
	err = withRetry("lien locales catégorie "+translated.DocumentID, func() error {
		_, err := s.UpdateCategory(ctx, translated.ID, bson.M{
			"localizations": appendID(translated.Localizations, canonical.ID),
			"image":         canonical.Image,
			"isFeatured":    canonical.IsFeatured,
		})
		return err
	})
	if err != nil {
		log.Printf("⚠️ Lien locale non posé sur la traduction %d: %v", translated.ID, err)
	}
}

func linkPageLocales(ctx context.Context, s *store.Store, canonical, translated *models.Page) {
	err := withRetry("lien locales page "+canonical.DocumentID, func() error {
		_, err := s.UpdatePage(ctx, canonical.ID, bson.M{
			"localizations": appendID(canonical.Localizations, translated.ID),
		})
		return err
	})
	if err != nil {
		log.Printf("⚠️ Lien locale non posé sur la page canonique %d: %v", canonical.ID, err)
	}

	err = withRetry("lien locales page "+translated.DocumentID, func() error {
		_, err := s.UpdatePage(ctx, translated.ID, bson.M{
			"localizations": appendID(translated.Localizations, canonical.ID),
			"isHomepage":    canonical.IsHomepage,
		})
		return err
	})
	if err != nil {
		log.Printf("⚠️ Lien locale non posé sur la traduction %d: %v", translated.ID, err)
	}
}

// appendID ajoute id à la liste s'il n'y figure pas déjà
func appendID(ids []int64, id int64) []int64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
