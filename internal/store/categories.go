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

func (s *Store) FindCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return decodeOne[models.Category](s.db.Collection(collCategories).FindOne(ctx, bson.M{"id": id}))
}

func (s *Store) FindCategoryBySlug(ctx context.Context, slug, locale string) (*models.Category, error) {
	return decodeOne[models.Category](s.db.Collection(collCategories).
		FindOne(ctx, bson.M{"slug": slug, "locale": locale}))
}

func (s *Store) FindCategoryByDocumentLocale(ctx context.Context, docID, locale string) (*models.Category, error) {
	return decodeOne[models.Category](s.db.Collection(collCategories).
		FindOne(ctx, bson.M{"documentId": docID, "locale": locale}))
}

// FindCategories retourne toutes les catégories d'une locale (l'arbre à
// deux niveaux est reconstruit côté appelant via ParentID).
func (s *Store) FindCategories(ctx context.Context, locale string) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := s.db.Collection(collCategories).Find(ctx, bson.M{"locale": locale}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var categories []models.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory : pas de contrôle d'unicité de slug sur les catégories,
// seuls pages et produits y sont soumis.
func (s *Store) CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	if c.Locale == "" {
		c.Locale = commerce.DefaultLocale
	}
	id, err := s.nextID(ctx, collCategories)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if c.DocumentID == "" {
		c.DocumentID = uuid.NewString()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.db.Collection(collCategories).InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id int64, data bson.M) (*models.Category, error) {
	current, err := s.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, commerce.Errorf(commerce.ENOTFOUND, "catégorie introuvable")
	}

	data["updatedAt"] = time.Now()
	if _, err := s.db.Collection(collCategories).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": data}); err != nil {
		return nil, err
	}
	return s.FindCategoryByID(ctx, id)
}
