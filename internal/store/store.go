package store

import (
	"context"

	"omnio_back_end/internal/commerce"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections du store d'entités
const (
	collProducts   = "products"
	collCategories = "categories"
	collPages      = "pages"
	collCarts      = "carts"
	collCartItems  = "cart_items"
	collOrders     = "orders"
	collWishlists  = "wishlists"
	collUsers      = "users"
	collCounters   = "counters"
)

// Store est le store d'entités adossé à MongoDB : collections typées,
// entités optionnellement localisées (variantes liées par documentId),
// ids numériques séquentiels par collection.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Store remplit les contrats du domaine
var (
	_ commerce.CartStore     = (*Store)(nil)
	_ commerce.OrderStore    = (*Store)(nil)
	_ commerce.WishlistStore = (*Store)(nil)
)

// nextID réserve le prochain id numérique d'une collection (compteur
// atomique upserté dans counters).
func (s *Store) nextID(ctx context.Context, seq string) (int64, error) {
	res := s.db.Collection(collCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": seq},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// decodeOne décode un FindOne en traduisant "aucun document" en nil
func decodeOne[T any](res *mongo.SingleResult) (*T, error) {
	var doc T
	if err := res.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}
