package models

import "time"

// Composants de section disponibles dans les pages CMS
const (
	SectionHero            = "dynamic-zone.hero-section"
	SectionFeatureGrid     = "dynamic-zone.feature-grid"
	SectionContentBlock    = "dynamic-zone.content-block"
	SectionProductCarousel = "dynamic-zone.product-carousel"
)

// Section est un bloc de contenu typé d'une page. Le champ Component
// détermine quels champs sont pertinents (zone dynamique à plat).
type Section struct {
	Component       string        `bson:"__component" json:"__component"`
	Title           string        `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle        string        `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	BackgroundImage string        `bson:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	CtaText         string        `bson:"ctaText,omitempty" json:"ctaText,omitempty"`
	CtaURL          string        `bson:"ctaUrl,omitempty" json:"ctaUrl,omitempty"`
	Content         []Block       `bson:"content,omitempty" json:"content,omitempty"`
	BackgroundColor string        `bson:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	Features        []FeatureItem `bson:"features,omitempty" json:"features,omitempty"`
	CategorySlug    string        `bson:"categorySlug,omitempty" json:"categorySlug,omitempty"`
	FeaturedOnly    bool          `bson:"featuredOnly,omitempty" json:"featuredOnly,omitempty"`
}

type FeatureItem struct {
	Icon        string `bson:"icon" json:"icon"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type SEO struct {
	MetaTitle       string `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
}

// Page CMS rendue par le storefront (accueil, à-propos, FAQ...)
type Page struct {
	ID            int64      `bson:"id" json:"id"`
	DocumentID    string     `bson:"documentId" json:"documentId"`
	Title         string     `bson:"title" json:"title"`
	Slug          string     `bson:"slug" json:"slug"`
	Sections      []Section  `bson:"sections,omitempty" json:"sections,omitempty"`
	SEO           *SEO       `bson:"seo,omitempty" json:"seo,omitempty"`
	IsHomepage    bool       `bson:"isHomepage,omitempty" json:"isHomepage,omitempty"`
	Locale        string     `bson:"locale" json:"locale"`
	Localizations []int64    `bson:"localizations,omitempty" json:"localizations,omitempty"`
	PublishedAt   *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
