package store

import (
	"context"

	"omnio_back_end/internal/commerce"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// slugSource adapte une collection localisée au contrat du contrôle
// d'unicité de slug (commerce.SlugSource).
type slugSource struct {
	coll *mongo.Collection
}

func (s *Store) productSlugs() slugSource { return slugSource{coll: s.db.Collection(collProducts)} }
func (s *Store) pageSlugs() slugSource    { return slugSource{coll: s.db.Collection(collPages)} }

type slugRow struct {
	ID            int64   `bson:"id"`
	DocumentID    string  `bson:"documentId"`
	Localizations []int64 `bson:"localizations"`
}

func (src slugSource) FindBySlug(ctx context.Context, slug, locale string, limit int) ([]commerce.SlugEntity, error) {
	opts := options.Find().
		SetProjection(bson.M{"id": 1, "documentId": 1, "localizations": 1}).
		SetLimit(int64(limit))
	cur, err := src.coll.Find(ctx, bson.M{"slug": slug, "locale": locale}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []commerce.SlugEntity
	for cur.Next(ctx) {
		var row slugRow
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, commerce.SlugEntity{
			ID:            row.ID,
			DocumentID:    row.DocumentID,
			Localizations: row.Localizations,
		})
	}
	return out, cur.Err()
}

func (src slugSource) FindEntityByID(ctx context.Context, id int64) (*commerce.SlugEntity, error) {
	row, err := decodeOne[slugRow](src.coll.FindOne(ctx, bson.M{"id": id}))
	if err != nil || row == nil {
		return nil, err
	}
	return &commerce.SlugEntity{
		ID:            row.ID,
		DocumentID:    row.DocumentID,
		Localizations: row.Localizations,
	}, nil
}
