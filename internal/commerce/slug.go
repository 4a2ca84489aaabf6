package commerce

import "context"

// DefaultLocale est la locale canonique : source de vérité des champs
// non localisés.
const DefaultLocale = "en"

// SlugEntity est la vue minimale d'une entité localisée, suffisante pour
// décider si une collision de slug pointe vers le même document logique.
type SlugEntity struct {
	ID            int64
	DocumentID    string
	Localizations []int64
}

// SlugSource expose les lectures nécessaires au contrôle d'unicité pour un
// type de contenu donné (produits ou pages).
type SlugSource interface {
	// FindBySlug retourne les entités portant (slug, locale), au plus limit.
	FindBySlug(ctx context.Context, slug, locale string, limit int) ([]SlugEntity, error)
	// FindEntityByID retourne l'entité par id numérique, nil si absente.
	FindEntityByID(ctx context.Context, id int64) (*SlugEntity, error)
}

// SlugCheck décrit l'écriture entrante soumise au contrôle.
type SlugCheck struct {
	Slug          string
	Locale        string
	ID            int64
	DocumentID    string
	Localizations []int64
	IsUpdate      bool
}

// CheckSlugUnique interdit à deux documents logiques distincts de partager
// un couple (slug, locale). Un document reste libre de modifier le slug de
// ses propres variantes de locale. Politique stricte en création ET en mise
// à jour. Sans slug dans la charge utile, le contrôle est ignoré.
func CheckSlugUnique(ctx context.Context, src SlugSource, chk SlugCheck) error {
	if chk.Slug == "" {
		return nil
	}

	locale := chk.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	// 1 suffit en création ; 2 en mise à jour ("soi-même plus au plus une
	// vraie collision").
	limit := 1
	if chk.IsUpdate {
		limit = 2
	}

	matches, err := src.FindBySlug(ctx, chk.Slug, locale, limit)
	if err != nil {
		return Internal("impossible de vérifier l'unicité du slug", err)
	}
	if len(matches) == 0 {
		return nil
	}

	docID := chk.DocumentID
	localizations := chk.Localizations

	// Récupération défensive : si l'appelant n'a pas fourni l'identité du
	// document mais connaît l'id numérique, on complète depuis le store.
	if docID == "" && len(localizations) == 0 && chk.ID != 0 {
		current, err := src.FindEntityByID(ctx, chk.ID)
		if err != nil {
			return Internal("impossible de vérifier l'unicité du slug", err)
		}
		if current != nil {
			docID = current.DocumentID
			localizations = current.Localizations
		}
	}

	for _, m := range matches {
		if sameLogicalDocument(m, chk, docID, localizations) {
			continue
		}
		return Errorf(ECONFLICT,
			"le slug %q est déjà utilisé pour la locale %q, choisissez-en un autre",
			chk.Slug, locale)
	}
	return nil
}

func sameLogicalDocument(m SlugEntity, chk SlugCheck, docID string, localizations []int64) bool {
	if docID != "" && m.DocumentID == docID {
		return true
	}
	for _, id := range localizations {
		if m.ID == id {
			return true
		}
	}
	// sa propre ligne n'est jamais une collision
	if chk.ID != 0 && m.ID == chk.ID {
		return true
	}
	return false
}
