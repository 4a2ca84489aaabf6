package models

import "time"

type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Password  string    `bson:"password,omitempty" json:"-"`
	Role      string    `bson:"role" json:"role"`
	Provider  string    `bson:"provider" json:"provider"`
	Locale    string    `bson:"locale,omitempty" json:"locale,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
