package store

import (
	"context"
	"time"

	"omnio_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) FindCartByUser(ctx context.Context, userID string) (*models.Cart, error) {
	return decodeOne[models.Cart](s.db.Collection(collCarts).FindOne(ctx, bson.M{"userId": userID}))
}

func (s *Store) FindCartByID(ctx context.Context, cartID int64) (*models.Cart, error) {
	return decodeOne[models.Cart](s.db.Collection(collCarts).FindOne(ctx, bson.M{"id": cartID}))
}

func (s *Store) CreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	id, err := s.nextID(ctx, collCarts)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	cart := &models.Cart{
		ID:         id,
		DocumentID: uuid.NewString(),
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.db.Collection(collCarts).InsertOne(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Store) FindCartItems(ctx context.Context, cartID int64) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := s.db.Collection(collCartItems).Find(ctx, bson.M{"cartId": cartID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) FindCartItemByID(ctx context.Context, itemID int64) (*models.CartItem, error) {
	return decodeOne[models.CartItem](s.db.Collection(collCartItems).FindOne(ctx, bson.M{"id": itemID}))
}

func (s *Store) FindCartItemByProduct(ctx context.Context, cartID, productID int64) (*models.CartItem, error) {
	return decodeOne[models.CartItem](s.db.Collection(collCartItems).
		FindOne(ctx, bson.M{"cartId": cartID, "productId": productID}))
}

func (s *Store) CreateCartItem(ctx context.Context, cartID, productID int64, quantity int) (*models.CartItem, error) {
	id, err := s.nextID(ctx, collCartItems)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := &models.CartItem{
		ID:         id,
		DocumentID: uuid.NewString(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.db.Collection(collCartItems).InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) UpdateCartItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	_, err := s.db.Collection(collCartItems).UpdateOne(ctx,
		bson.M{"id": itemID},
		bson.M{"$set": bson.M{"quantity": quantity, "updatedAt": time.Now()}},
	)
	return err
}

func (s *Store) DeleteCartItem(ctx context.Context, itemID int64) error {
	_, err := s.db.Collection(collCartItems).DeleteOne(ctx, bson.M{"id": itemID})
	return err
}
