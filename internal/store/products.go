package store

import (
	"context"
	"time"

	"omnio_back_end/internal/commerce"
	"omnio_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductFilter restreint une recherche de produits
type ProductFilter struct {
	Locale        string
	CategoryID    int64
	Featured      *bool
	PublishedOnly bool
	Limit         int64
}

func (s *Store) FindProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return decodeOne[models.Product](s.db.Collection(collProducts).FindOne(ctx, bson.M{"id": id}))
}

// FindProductByDocumentID résout un identifiant de document vers une
// variante concrète (la première trouvée, toutes locales confondues).
func (s *Store) FindProductByDocumentID(ctx context.Context, docID string) (*models.Product, error) {
	return decodeOne[models.Product](s.db.Collection(collProducts).FindOne(ctx, bson.M{"documentId": docID}))
}

// FindProductByDocumentLocale cible la variante d'une locale précise
func (s *Store) FindProductByDocumentLocale(ctx context.Context, docID, locale string) (*models.Product, error) {
	return decodeOne[models.Product](s.db.Collection(collProducts).
		FindOne(ctx, bson.M{"documentId": docID, "locale": locale}))
}

func (s *Store) FindProductBySlug(ctx context.Context, slug, locale string) (*models.Product, error) {
	return decodeOne[models.Product](s.db.Collection(collProducts).
		FindOne(ctx, bson.M{"slug": slug, "locale": locale}))
}

func (s *Store) FindProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	filter := bson.M{}
	if f.Locale != "" {
		filter["locale"] = f.Locale
	}
	if f.CategoryID != 0 {
		filter["categoryId"] = f.CategoryID
	}
	if f.Featured != nil {
		filter["isFeatured"] = *f.Featured
	}
	if f.PublishedOnly {
		filter["publishedAt"] = bson.M{"$ne": nil}
	}

	limit := f.Limit
	if limit == 0 {
		limit = 100
	}
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}}).SetLimit(limit)

	cur, err := s.db.Collection(collProducts).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct applique le contrôle d'unicité de slug puis insère la
// variante. Attribue id numérique et documentId si absents.
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.Locale == "" {
		p.Locale = commerce.DefaultLocale
	}
	err := commerce.CheckSlugUnique(ctx, s.productSlugs(), commerce.SlugCheck{
		Slug:          p.Slug,
		Locale:        p.Locale,
		ID:            p.ID,
		DocumentID:    p.DocumentID,
		Localizations: p.Localizations,
	})
	if err != nil {
		return nil, err
	}

	id, err := s.nextID(ctx, collProducts)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if p.DocumentID == "" {
		p.DocumentID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.db.Collection(collProducts).InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct applique une mise à jour partielle. Si la charge utile
// contient un slug, le contrôle d'unicité est appliqué avant l'écriture
// (politique stricte, identique à la création).
func (s *Store) UpdateProduct(ctx context.Context, id int64, data bson.M) (*models.Product, error) {
	current, err := s.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, commerce.Errorf(commerce.ENOTFOUND, "produit introuvable")
	}

	if slug, ok := data["slug"].(string); ok && slug != "" {
		locale := current.Locale
		if l, ok := data["locale"].(string); ok && l != "" {
			locale = l
		}
		err := commerce.CheckSlugUnique(ctx, s.productSlugs(), commerce.SlugCheck{
			Slug:          slug,
			Locale:        locale,
			ID:            id,
			DocumentID:    current.DocumentID,
			Localizations: current.Localizations,
			IsUpdate:      true,
		})
		if err != nil {
			return nil, err
		}
	}

	data["updatedAt"] = time.Now()
	if _, err := s.db.Collection(collProducts).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": data}); err != nil {
		return nil, err
	}
	return s.FindProductByID(ctx, id)
}
