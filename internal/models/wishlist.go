package models

import "time"

// Wishlist : au plus une par utilisateur, ensemble de références produits.
// Products est peuplé à la lecture (doublons et références mortes filtrés).
type Wishlist struct {
	ID         int64     `bson:"id" json:"id"`
	DocumentID string    `bson:"documentId" json:"documentId"`
	UserID     string    `bson:"userId" json:"userId"`
	ProductIDs []int64   `bson:"productIds" json:"-"`
	Products   []Product `bson:"-" json:"products"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
