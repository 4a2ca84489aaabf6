package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var indexesOnce sync.Once

// EnsureIndexes crée les index MongoDB utilisés par les requêtes fréquentes.
// L'index unique sur orderNumber est la seule contrainte d'unicité en base :
// l'unicité des slugs par locale reste applicative.
func EnsureIndexes() {
	indexesOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		create := func(coll string, models []mongo.IndexModel) {
			if _, err := MongoDB.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
				log.Printf("⚠️ Impossible de créer les index de %s: %v", coll, err)
			}
		}

		unique := options.Index().SetUnique(true)

		create("orders", []mongo.IndexModel{
			{Keys: bson.D{{Key: "orderNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		})
		create("carts", []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		})
		create("cart_items", []mongo.IndexModel{
			{Keys: bson.D{{Key: "cartId", Value: 1}}},
			{Keys: bson.D{{Key: "cartId", Value: 1}, {Key: "productId", Value: 1}}},
		})
		create("products", []mongo.IndexModel{
			{Keys: bson.D{{Key: "slug", Value: 1}, {Key: "locale", Value: 1}}},
			{Keys: bson.D{{Key: "documentId", Value: 1}}},
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		})
		create("pages", []mongo.IndexModel{
			{Keys: bson.D{{Key: "slug", Value: 1}, {Key: "locale", Value: 1}}},
			{Keys: bson.D{{Key: "documentId", Value: 1}}},
		})
		create("categories", []mongo.IndexModel{
			{Keys: bson.D{{Key: "slug", Value: 1}, {Key: "locale", Value: 1}}},
		})
		create("wishlists", []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		})
		create("users", []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "provider", Value: 1}}, Options: unique},
		})

		log.Println("✅ Index MongoDB vérifiés")
	})
}
