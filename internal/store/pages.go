package store

import (
	"context"
	"time"

	"omnio_back_end/internal/commerce"
	"omnio_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) FindPageByID(ctx context.Context, id int64) (*models.Page, error) {
	return decodeOne[models.Page](s.db.Collection(collPages).FindOne(ctx, bson.M{"id": id}))
}

func (s *Store) FindPageBySlug(ctx context.Context, slug, locale string) (*models.Page, error) {
	return decodeOne[models.Page](s.db.Collection(collPages).
		FindOne(ctx, bson.M{"slug": slug, "locale": locale}))
}

func (s *Store) FindPageByDocumentLocale(ctx context.Context, docID, locale string) (*models.Page, error) {
	return decodeOne[models.Page](s.db.Collection(collPages).
		FindOne(ctx, bson.M{"documentId": docID, "locale": locale}))
}

// FindHomepage retourne la page d'accueil d'une locale
func (s *Store) FindHomepage(ctx context.Context, locale string) (*models.Page, error) {
	return decodeOne[models.Page](s.db.Collection(collPages).
		FindOne(ctx, bson.M{"isHomepage": true, "locale": locale}))
}

// CreatePage : même contrôle d'unicité de slug que les produits
func (s *Store) CreatePage(ctx context.Context, p *models.Page) (*models.Page, error) {
	if p.Locale == "" {
		p.Locale = commerce.DefaultLocale
	}
	err := commerce.CheckSlugUnique(ctx, s.pageSlugs(), commerce.SlugCheck{
		Slug:          p.Slug,
		Locale:        p.Locale,
		ID:            p.ID,
		DocumentID:    p.DocumentID,
		Localizations: p.Localizations,
	})
	if err != nil {
		return nil, err
	}

	id, err := s.nextID(ctx, collPages)
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

	if _, err := s.db.Collection(collPages).InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) UpdatePage(ctx context.Context, id int64, data bson.M) (*models.Page, error) {
	current, err := s.FindPageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, commerce.Errorf(commerce.ENOTFOUND, "page introuvable")
	}

	if slug, ok := data["slug"].(string); ok && slug != "" {
		locale := current.Locale
		if l, ok := data["locale"].(string); ok && l != "" {
			locale = l
		}
		err := commerce.CheckSlugUnique(ctx, s.pageSlugs(), commerce.SlugCheck{
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
	if _, err := s.db.Collection(collPages).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": data}); err != nil {
		return nil, err
	}
	return s.FindPageByID(ctx, id)
}
