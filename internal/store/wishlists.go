package store

import (
	"context"
	"time"

	"omnio_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) FindWishlistByUser(ctx context.Context, userID string) (*models.Wishlist, error) {
	return decodeOne[models.Wishlist](s.db.Collection(collWishlists).FindOne(ctx, bson.M{"userId": userID}))
}

func (s *Store) CreateWishlist(ctx context.Context, userID string) (*models.Wishlist, error) {
	id, err := s.nextID(ctx, collWishlists)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	wl := &models.Wishlist{
		ID:         id,
		DocumentID: uuid.NewString(),
		UserID:     userID,
		ProductIDs: []int64{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.db.Collection(collWishlists).InsertOne(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

func (s *Store) UpdateWishlistProducts(ctx context.Context, wishlistID int64, productIDs []int64) error {
	_, err := s.db.Collection(collWishlists).UpdateOne(ctx,
		bson.M{"id": wishlistID},
		bson.M{"$set": bson.M{"productIds": productIDs, "updatedAt": time.Now()}},
	)
	return err
}
