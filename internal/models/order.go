package models

import "time"

// OrderItem est une copie par valeur du produit au moment de la commande.
// Modifier le produit ensuite ne change pas les commandes passées.
type OrderItem struct {
	ProductID  int64   `bson:"productId" json:"productId"`
	DocumentID string  `bson:"documentId" json:"documentId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Image      string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order est immuable après création.
type Order struct {
	ID            int64       `bson:"id" json:"id"`
	DocumentID    string      `bson:"documentId" json:"documentId"`
	OrderNumber   string      `bson:"orderNumber" json:"orderNumber"`
	UserID        string      `bson:"userId" json:"userId"`
	Items         []OrderItem `bson:"items" json:"items"`
	Total         float64     `bson:"total" json:"total"`
	State         string      `bson:"state" json:"state"`
	PaymentMethod string      `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
}
