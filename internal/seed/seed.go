package seed

import (
	"context"
	"log"
	"time"

	"omnio_back_end/internal/models"
	"omnio_back_end/internal/services"
	"omnio_back_end/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	localeEN = "en"
	localeDE = "de"
)

type stats struct {
	Categories int
	Products   int
	Pages      int
	Skipped    int
}

// Run amorce le catalogue : catégories, produits et pages en anglais
// (locale canonique) et en allemand, variantes liées entre elles. Le
// seed est réentrant : une entité dont le slug existe déjà est sautée.
func Run(ctx context.Context, s *store.Store) error {
	log.Println("🚀 Démarrage du seed Omnio")
	var st stats

	categories := seedCategories(ctx, s, &st)
	seedProducts(ctx, s, categories, &st)
	seedPages(ctx, s, &st)

	log.Printf("✅ Seed terminé : %d catégories, %d produits, %d pages créés, %d entités déjà en place",
		st.Categories, st.Products, st.Pages, st.Skipped)
	return nil
}

type categorySeed struct {
	NameEN, NameDE string
	SlugEN, SlugDE string
	DescEN, DescDE string
	Parent         string // slug EN du parent, vide pour une racine
	IsFeatured     bool
}

var categorySeeds = []categorySeed{
	{NameEN: "Audio", NameDE: "Audio", SlugEN: "audio", SlugDE: "audio-de",
		DescEN: "Headphones, speakers and everything that sounds good.",
		DescDE: "Kopfhörer, Lautsprecher und alles, was gut klingt.", IsFeatured: true},
	{NameEN: "Headphones", NameDE: "Kopfhörer", SlugEN: "headphones", SlugDE: "kopfhoerer",
		DescEN: "Over-ear, on-ear and in-ear headphones.",
		DescDE: "Over-Ear-, On-Ear- und In-Ear-Kopfhörer.", Parent: "audio"},
	{NameEN: "Speakers", NameDE: "Lautsprecher", SlugEN: "speakers", SlugDE: "lautsprecher",
		DescEN: "Bookshelf and portable speakers.",
		DescDE: "Regal- und tragbare Lautsprecher.", Parent: "audio"},
	{NameEN: "Computing", NameDE: "Computer", SlugEN: "computing", SlugDE: "computer",
		DescEN: "Laptops and accessories for work and play.",
		DescDE: "Laptops und Zubehör für Arbeit und Freizeit.", IsFeatured: true},
	{NameEN: "Laptops", NameDE: "Laptops", SlugEN: "laptops", SlugDE: "laptops-de",
		DescEN: "Ultrabooks and workstations.",
		DescDE: "Ultrabooks und Workstations.", Parent: "computing"},
	{NameEN: "Accessories", NameDE: "Zubehör", SlugEN: "accessories", SlugDE: "zubehoer",
		DescEN: "Keyboards, mice and hubs.",
		DescDE: "Tastaturen, Mäuse und Hubs.", Parent: "computing"},
}

// seedCategories crée les catégories EN puis leurs variantes DE, et
// retourne les catégories EN indexées par slug pour le seed produits
func seedCategories(ctx context.Context, s *store.Store, st *stats) map[string]*models.Category {
	bySlug := make(map[string]*models.Category)
	bySlugDE := make(map[string]*models.Category)

	for _, seed := range categorySeeds {
		existing, err := s.FindCategoryBySlug(ctx, seed.SlugEN, localeEN)
		if err != nil {
			log.Printf("⚠️ Vérification slug %q impossible: %v", seed.SlugEN, err)
			continue
		}
		if existing != nil {
			bySlug[seed.SlugEN] = existing
			if existingDE, err := s.FindCategoryByDocumentLocale(ctx, existing.DocumentID, localeDE); err == nil && existingDE != nil {
				bySlugDE[seed.SlugEN] = existingDE
			}
			st.Skipped++
			continue
		}

		en := &models.Category{
			Name:        seed.NameEN,
			Slug:        seed.SlugEN,
			Description: seed.DescEN,
			IsFeatured:  seed.IsFeatured,
			Locale:      localeEN,
		}
		if parent, ok := bySlug[seed.Parent]; ok {
			en.ParentID = &parent.ID
		}

		if err := withRetry("création catégorie "+seed.SlugEN, func() error {
			created, err := s.CreateCategory(ctx, en)
			if err == nil {
				en = created
			}
			return err
		}); err != nil {
			log.Printf("❌ Catégorie %q non créée: %v", seed.SlugEN, err)
			continue
		}
		publishCategory(ctx, s, en)

		de := &models.Category{
			DocumentID:  en.DocumentID,
			Name:        seed.NameDE,
			Slug:        seed.SlugDE,
			Description: seed.DescDE,
			Locale:      localeDE,
		}
		if parentDE, ok := bySlugDE[seed.Parent]; ok {
			de.ParentID = &parentDE.ID
		}
		if err := withRetry("création catégorie "+seed.SlugDE, func() error {
			created, err := s.CreateCategory(ctx, de)
			if err == nil {
				de = created
			}
			return err
		}); err != nil {
			log.Printf("⚠️ Variante DE de %q non créée: %v", seed.SlugEN, err)
		} else {
			publishCategory(ctx, s, de)
			linkCategoryLocales(ctx, s, en, de)
			bySlugDE[seed.SlugEN] = de
		}

		bySlug[seed.SlugEN] = en
		st.Categories++
	}
	return bySlug
}

type productSeed struct {
	NameEN, NameDE string
	SlugEN, SlugDE string
	Brand          string
	Price          float64
	OriginalPrice  *float64
	Category       string // slug EN
	InStock        bool
	IsFeatured     bool
	DescEN, DescDE string
	FeaturesEN     []string
	FeaturesDE     []string
}

func price(v float64) *float64 { return &v }

var productSeeds = []productSeed{
	{NameEN: "Nimbus ANC Headphones", NameDE: "Nimbus ANC Kopfhörer",
		SlugEN: "nimbus-anc-headphones", SlugDE: "nimbus-anc-kopfhoerer",
		Brand: "Nimbus", Price: 249.00, OriginalPrice: price(299.00),
		Category: "headphones", InStock: true, IsFeatured: true,
		DescEN:     "Wireless over-ear headphones with adaptive noise cancelling and 40 hours of battery.",
		DescDE:     "Kabellose Over-Ear-Kopfhörer mit adaptiver Geräuschunterdrückung und 40 Stunden Akku.",
		FeaturesEN: []string{"Adaptive noise cancelling", "40 h battery life", "Multipoint Bluetooth 5.3"},
		FeaturesDE: []string{"Adaptive Geräuschunterdrückung", "40 h Akkulaufzeit", "Multipoint Bluetooth 5.3"}},
	{NameEN: "Nimbus Buds Mini", NameDE: "Nimbus Buds Mini",
		SlugEN: "nimbus-buds-mini", SlugDE: "nimbus-buds-mini-de",
		Brand: "Nimbus", Price: 89.00,
		Category: "headphones", InStock: true,
		DescEN: "Compact true-wireless earbuds with wireless charging case.",
		DescDE: "Kompakte True-Wireless-Ohrhörer mit kabellosem Ladecase."},
	{NameEN: "Vela Bookshelf Speaker", NameDE: "Vela Regallautsprecher",
		SlugEN: "vela-bookshelf-speaker", SlugDE: "vela-regallautsprecher",
		Brand: "Vela", Price: 179.00,
		Category: "speakers", InStock: true,
		DescEN: "Two-way bookshelf speaker with silk dome tweeter.",
		DescDE: "Zwei-Wege-Regallautsprecher mit Seidenkalotten-Hochtöner."},
	{NameEN: "Atlas 14 Ultrabook", NameDE: "Atlas 14 Ultrabook",
		SlugEN: "atlas-14-ultrabook", SlugDE: "atlas-14-ultrabook-de",
		Brand: "Atlas", Price: 1299.00, OriginalPrice: price(1449.00),
		Category: "laptops", InStock: true, IsFeatured: true,
		DescEN:     "14-inch ultrabook, 32 GB RAM, 1 TB SSD, all-day battery.",
		DescDE:     "14-Zoll-Ultrabook, 32 GB RAM, 1 TB SSD, Akku für den ganzen Tag.",
		FeaturesEN: []string{"32 GB RAM", "1 TB NVMe SSD", "14-inch 120 Hz display"},
		FeaturesDE: []string{"32 GB RAM", "1 TB NVMe SSD", "14-Zoll-Display mit 120 Hz"}},
	{NameEN: "Atlas Mechanical Keyboard", NameDE: "Atlas Mechanische Tastatur",
		SlugEN: "atlas-mechanical-keyboard", SlugDE: "atlas-mechanische-tastatur",
		Brand: "Atlas", Price: 129.00,
		Category: "accessories", InStock: false,
		DescEN: "Low-profile mechanical keyboard with hot-swappable switches.",
		DescDE: "Flache mechanische Tastatur mit austauschbaren Schaltern."},
	{NameEN: "Orbit Wireless Mouse", NameDE: "Orbit Funkmaus",
		SlugEN: "orbit-wireless-mouse", SlugDE: "orbit-funkmaus",
		Brand: "Orbit", Price: 59.00,
		Category: "accessories", InStock: true,
		DescEN: "Ergonomic wireless mouse with 8 programmable buttons.",
		DescDE: "Ergonomische Funkmaus mit 8 programmierbaren Tasten."},
}

func seedProducts(ctx context.Context, s *store.Store, categories map[string]*models.Category, st *stats) {
	for _, seed := range productSeeds {
		existing, err := s.FindProductBySlug(ctx, seed.SlugEN, localeEN)
		if err != nil {
			log.Printf("⚠️ Vérification slug %q impossible: %v", seed.SlugEN, err)
			continue
		}
		if existing != nil {
			st.Skipped++
			continue
		}

		en := &models.Product{
			Name:          seed.NameEN,
			Slug:          seed.SlugEN,
			Brand:         seed.Brand,
			Description:   models.ParagraphBlocks(seed.DescEN),
			Price:         seed.Price,
			OriginalPrice: seed.OriginalPrice,
			InStock:       seed.InStock,
			IsFeatured:    seed.IsFeatured,
			Locale:        localeEN,
		}
		if len(seed.FeaturesEN) > 0 {
			en.Features = models.ListBlocks(seed.FeaturesEN)
		}
		if category, ok := categories[seed.Category]; ok {
			en.CategoryID = category.ID
		}

		if err := withRetry("création produit "+seed.SlugEN, func() error {
			created, err := s.CreateProduct(ctx, en)
			if err == nil {
				en = created
			}
			return err
		}); err != nil {
			log.Printf("❌ Produit %q non créé: %v", seed.SlugEN, err)
			continue
		}
		publishProduct(ctx, s, en)
		services.IndexProduct(*en)

		de := &models.Product{
			DocumentID:  en.DocumentID,
			Name:        seed.NameDE,
			Slug:        seed.SlugDE,
			Brand:       seed.Brand,
			Description: models.ParagraphBlocks(seed.DescDE),
			Price:       seed.Price,
			Locale:      localeDE,
		}
		if len(seed.FeaturesDE) > 0 {
			de.Features = models.ListBlocks(seed.FeaturesDE)
		}
		if err := withRetry("création produit "+seed.SlugDE, func() error {
			created, err := s.CreateProduct(ctx, de)
			if err == nil {
				de = created
			}
			return err
		}); err != nil {
			log.Printf("⚠️ Variante DE de %q non créée: %v", seed.SlugEN, err)
		} else {
			publishProduct(ctx, s, de)
			linkProductLocales(ctx, s, en, de)
			if updated, err := s.FindProductByID(ctx, de.ID); err == nil && updated != nil {
				services.IndexProduct(*updated)
			}
		}

		st.Products++
	}
}

type pageSeed struct {
	TitleEN, TitleDE string
	SlugEN, SlugDE   string
	IsHomepage       bool
	SectionsEN       []models.Section
	SectionsDE       []models.Section
}

var pageSeeds = []pageSeed{
	{
		TitleEN: "Home", TitleDE: "Startseite",
		SlugEN: "home", SlugDE: "startseite", IsHomepage: true,
		SectionsEN: []models.Section{
			{Component: models.SectionHero, Title: "Gear that lasts",
				Subtitle: "Audio and computing essentials, shipped from Berlin.",
				CtaText:  "Shop now", CtaURL: "/products"},
			{Component: models.SectionProductCarousel, Title: "Featured", FeaturedOnly: true},
			{Component: models.SectionFeatureGrid, Title: "Why Omnio", Features: []models.FeatureItem{
				{Icon: "truck", Title: "Free shipping", Description: "On orders over 50€."},
				{Icon: "shield", Title: "2-year warranty", Description: "On every product."},
				{Icon: "refresh", Title: "30-day returns", Description: "No questions asked."},
			}},
		},
		SectionsDE: []models.Section{
			{Component: models.SectionHero, Title: "Technik, die hält",
				Subtitle: "Audio- und Computer-Essentials, versandt aus Berlin.",
				CtaText:  "Jetzt einkaufen", CtaURL: "/products"},
			{Component: models.SectionProductCarousel, Title: "Empfohlen", FeaturedOnly: true},
		},
	},
	{
		TitleEN: "About us", TitleDE: "Über uns",
		SlugEN: "about", SlugDE: "ueber-uns",
		SectionsEN: []models.Section{
			{Component: models.SectionContentBlock, Title: "Our story",
				Content: models.ParagraphBlocks("Omnio started in 2021 as a two-person shop selling refurbished headphones.")},
		},
		SectionsDE: []models.Section{
			{Component: models.SectionContentBlock, Title: "Unsere Geschichte",
				Content: models.ParagraphBlocks("Omnio begann 2021 als Zwei-Personen-Laden für aufbereitete Kopfhörer.")},
		},
	},
}

func seedPages(ctx context.Context, s *store.Store, st *stats) {
	for _, seed := range pageSeeds {
		existing, err := s.FindPageBySlug(ctx, seed.SlugEN, localeEN)
		if err != nil {
			log.Printf("⚠️ Vérification slug %q impossible: %v", seed.SlugEN, err)
			continue
		}
		if existing != nil {
			st.Skipped++
			continue
		}

		en := &models.Page{
			Title:      seed.TitleEN,
			Slug:       seed.SlugEN,
			Sections:   seed.SectionsEN,
			IsHomepage: seed.IsHomepage,
			SEO:        &models.SEO{MetaTitle: seed.TitleEN + " | Omnio"},
			Locale:     localeEN,
		}
		if err := withRetry("création page "+seed.SlugEN, func() error {
			created, err := s.CreatePage(ctx, en)
			if err == nil {
				en = created
			}
			return err
		}); err != nil {
			log.Printf("❌ Page %q non créée: %v", seed.SlugEN, err)
			continue
		}
		publishPage(ctx, s, en)

		de := &models.Page{
			DocumentID: en.DocumentID,
			Title:      seed.TitleDE,
			Slug:       seed.SlugDE,
			Sections:   seed.SectionsDE,
			SEO:        &models.SEO{MetaTitle: seed.TitleDE + " | Omnio"},
			Locale:     localeDE,
		}
		if err := withRetry("création page "+seed.SlugDE, func() error {
			created, err := s.CreatePage(ctx, de)
			if err == nil {
				de = created
			}
			return err
		}); err != nil {
			log.Printf("⚠️ Variante DE de %q non créée: %v", seed.SlugEN, err)
		} else {
			publishPage(ctx, s, de)
			linkPageLocales(ctx, s, en, de)
		}

		st.Pages++
	}
}

// Publication séparée de la création : les entités naissent en
// brouillon, le seed les publie une fois posées

func publishProduct(ctx context.Context, s *store.Store, p *models.Product) {
	if err := withRetry("publication produit "+p.Slug, func() error {
		_, err := s.UpdateProduct(ctx, p.ID, bson.M{"publishedAt": time.Now()})
		return err
	}); err != nil {
		log.Printf("⚠️ Produit %q non publié: %v", p.Slug, err)
	}
}

func publishCategory(ctx context.Context, s *store.Store, c *models.Category) {
	if err := withRetry("publication catégorie "+c.Slug, func() error {
		_, err := s.UpdateCategory(ctx, c.ID, bson.M{"publishedAt": time.Now()})
		return err
	}); err != nil {
		log.Printf("⚠️ Catégorie %q non publiée: %v", c.Slug, err)
	}
}

func publishPage(ctx context.Context, s *store.Store, p *models.Page) {
	if err := withRetry("publication page "+p.Slug, func() error {
		_, err := s.UpdatePage(ctx, p.ID, bson.M{"publishedAt": time.Now()})
		return err
	}); err != nil {
		log.Printf("⚠️ Page %q non publiée: %v", p.Slug, err)
	}
}
