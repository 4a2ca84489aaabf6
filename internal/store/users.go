package store

import (
	"context"
	"time"

	"omnio_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return decodeOne[models.User](s.db.Collection(collUsers).FindOne(ctx, bson.M{"_id": id}))
}

func (s *Store) FindUserByEmail(ctx context.Context, email, provider string) (*models.User, error) {
	return decodeOne[models.User](s.db.Collection(collUsers).FindOne(ctx,
		bson.M{"email": email, "provider": provider}))
}

// CreateUser crée un utilisateur. L'unicité (email, provider) est
// garantie par index, une collision remonte en erreur Mongo.
func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = "customer"
	}
	if u.Provider == "" {
		u.Provider = "local"
	}
	if _, err := s.db.Collection(collUsers).InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpsertOAuthUser retrouve ou crée l'utilisateur associé à un compte
// OAuth externe
func (s *Store) UpsertOAuthUser(ctx context.Context, email, name, provider string) (*models.User, error) {
	existing, err := s.FindUserByEmail(ctx, email, provider)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.CreateUser(ctx, &models.User{
		Email:    email,
		Name:     name,
		Provider: provider,
	})
}
