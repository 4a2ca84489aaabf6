package models

import "time"

// Product est la variante d'un document logique pour une locale donnée.
// Toutes les variantes d'un même produit partagent le même DocumentID,
// et se référencent mutuellement via Localizations.
type Product struct {
	ID             int64      `bson:"id" json:"id"`
	DocumentID     string     `bson:"documentId" json:"documentId"`
	Name           string     `bson:"name" json:"name"`
	Slug           string     `bson:"slug" json:"slug"`
	Brand          string     `bson:"brand,omitempty" json:"brand,omitempty"`
	Description    []Block    `bson:"description,omitempty" json:"description,omitempty"`
	Features       []Block    `bson:"features,omitempty" json:"features,omitempty"`
	Specifications []Block    `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Price          float64    `bson:"price" json:"price"`
	OriginalPrice  *float64   `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Image          string     `bson:"image,omitempty" json:"image,omitempty"`
	Images         []string   `bson:"images,omitempty" json:"images,omitempty"`
	InStock        bool       `bson:"inStock" json:"inStock"`
	IsFeatured     bool       `bson:"isFeatured" json:"isFeatured"`
	Rating         float64    `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewsCount   int        `bson:"reviewsCount,omitempty" json:"reviewsCount,omitempty"`
	CategoryID     int64      `bson:"categoryId,omitempty" json:"-"`
	Category       *Category  `bson:"-" json:"category,omitempty"`
	Locale         string     `bson:"locale" json:"locale"`
	Localizations  []int64    `bson:"localizations,omitempty" json:"localizations,omitempty"`
	PublishedAt    *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}
