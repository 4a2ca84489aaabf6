package store

import (
	"context"

	"omnio_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrder insère la commande figée. L'index unique sur orderNumber
// rejette une éventuelle collision de numéro.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	id, err := s.nextID(ctx, collOrders)
	if err != nil {
		return nil, err
	}
	order.ID = id
	if order.DocumentID == "" {
		order.DocumentID = uuid.NewString()
	}
	if _, err := s.db.Collection(collOrders).InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) FindOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.db.Collection(collOrders).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) FindOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	return decodeOne[models.Order](s.db.Collection(collOrders).FindOne(ctx, bson.M{"id": id}))
}
