package models

import "time"

// Category forme un arbre à deux niveaux : les catégories racines ont des
// enfants, les enfants n'ont pas de petits-enfants (convention de contenu,
// pas contrainte en base).
type Category struct {
	ID            int64      `bson:"id" json:"id"`
	DocumentID    string     `bson:"documentId" json:"documentId"`
	Name          string     `bson:"name" json:"name"`
	Slug          string     `bson:"slug" json:"slug"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	Image         string     `bson:"image,omitempty" json:"image,omitempty"`
	ParentID      *int64     `bson:"parentId,omitempty" json:"-"`
	Parent        *Category  `bson:"-" json:"parent,omitempty"`
	Children      []Category `bson:"-" json:"children,omitempty"`
	IsFeatured    bool       `bson:"isFeatured,omitempty" json:"isFeatured,omitempty"`
	Locale        string     `bson:"locale" json:"locale"`
	Localizations []int64    `bson:"localizations,omitempty" json:"localizations,omitempty"`
	PublishedAt   *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
