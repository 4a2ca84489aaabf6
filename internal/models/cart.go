package models

import "time"

// Cart : un utilisateur possède au plus un panier (créé à la demande).
// Items est peuplé à la lecture, jamais persisté dans le document panier.
type Cart struct {
	ID         int64      `bson:"id" json:"id"`
	DocumentID string     `bson:"documentId" json:"documentId"`
	UserID     string     `bson:"userId" json:"userId"`
	Items      []CartItem `bson:"-" json:"cart_items"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CartItem référence un produit par id numérique. Au plus un item par
// (panier, produit) — garanti par la logique d'ajout, pas par la base.
type CartItem struct {
	ID         int64     `bson:"id" json:"id"`
	DocumentID string    `bson:"documentId" json:"documentId"`
	CartID     int64     `bson:"cartId" json:"-"`
	ProductID  int64     `bson:"productId" json:"-"`
	Quantity   int       `bson:"quantity" json:"quantity"`
	Product    *Product  `bson:"-" json:"product,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
