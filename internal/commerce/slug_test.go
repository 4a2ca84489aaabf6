package commerce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSlugSource sert des entités indexées par (slug, locale)
type fakeSlugSource struct {
	bySlug map[string][]SlugEntity
	byID   map[int64]SlugEntity

	lastLimit int
}

func newFakeSlugSource() *fakeSlugSource {
	return &fakeSlugSource{
		bySlug: map[string][]SlugEntity{},
		byID:   map[int64]SlugEntity{},
	}
}

func (f *fakeSlugSource) add(slug, locale string, e SlugEntity) {
	key := slug + "/" + locale
	f.bySlug[key] = append(f.bySlug[key], e)
	f.byID[e.ID] = e
}

func (f *fakeSlugSource) FindBySlug(_ context.Context, slug, locale string, limit int) ([]SlugEntity, error) {
	f.lastLimit = limit
	matches := f.bySlug[slug+"/"+locale]
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeSlugSource) FindEntityByID(_ context.Context, id int64) (*SlugEntity, error) {
	if e, ok := f.byID[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func TestSlugCreateConflict(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", "en", SlugEntity{ID: 1, DocumentID: "doc-a"})

	err := CheckSlugUnique(context.Background(), src, SlugCheck{Slug: "audio", Locale: "en"})
	require.Equal(t, ECONFLICT, ErrorCode(err))
	require.Contains(t, ErrorMessage(err), `"audio"`)
	require.Equal(t, 1, src.lastLimit, "une seule ligne suffit en création")
}

func TestSlugFreeWhenNoMatch(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", "en", SlugEntity{ID: 1, DocumentID: "doc-a"})

	err := CheckSlugUnique(context.Background(), src, SlugCheck{Slug: "video", Locale: "en"})
	require.NoError(t, err)
}

// Le même slug est libre dans une autre locale
func TestSlugPerLocaleScope(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", "en", SlugEntity{ID: 1, DocumentID: "doc-a"})

	err := CheckSlugUnique(context.Background(), src, SlugCheck{Slug: "audio", Locale: "de"})
	require.NoError(t, err)
}

func TestSlugEmptySkipsCheck(t *testing.T) {
	err := CheckSlugUnique(context.Background(), newFakeSlugSource(), SlugCheck{Locale: "en"})
	require.NoError(t, err)
}

func TestSlugLocaleDefaultsToCanonical(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", DefaultLocale, SlugEntity{ID: 1, DocumentID: "doc-a"})

	err := CheckSlugUnique(context.Background(), src, SlugCheck{Slug: "audio"})
	require.Equal(t, ECONFLICT, ErrorCode(err))
}

// Un document peut réutiliser le slug de ses propres variantes de locale
func TestSlugSameDocumentExempt(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", "en", SlugEntity{ID: 1, DocumentID: "doc-a", Localizations: []int64{2}})

	// même documentId
	err := CheckSlugUnique(context.Background(), src, SlugCheck{
		Slug: "audio", Locale: "en", ID: 2, DocumentID: "doc-a", IsUpdate: true,
	})
	require.NoError(t, err)

	// variante listée dans localizations de l'entité en place
	err = CheckSlugUnique(context.Background(), src, SlugCheck{
		Slug: "audio", Locale: "en", ID: 2, Localizations: []int64{1}, IsUpdate: true,
	})
	require.NoError(t, err)

	// sa propre ligne
	err = CheckSlugUnique(context.Background(), src, SlugCheck{
		Slug: "audio", Locale: "en", ID: 1, DocumentID: "doc-b", IsUpdate: true,
	})
	require.NoError(t, err)
}

func TestSlugUpdateStrictConflict(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", "en", SlugEntity{ID: 1, DocumentID: "doc-a"})

	err := CheckSlugUnique(context.Background(), src, SlugCheck{
		Slug: "audio", Locale: "en", ID: 9, DocumentID: "doc-b", IsUpdate: true,
	})
	require.Equal(t, ECONFLICT, ErrorCode(err))
	require.Equal(t, 2, src.lastLimit, "en mise à jour on lit soi-même plus une collision")
}

// Identité du document absente de la charge utile : complétée depuis le
// store avant de décider
func TestSlugDefensiveFetchByID(t *testing.T) {
	src := newFakeSlugSource()
	src.add("audio", "en", SlugEntity{ID: 1, DocumentID: "doc-a"})
	src.byID[9] = SlugEntity{ID: 9, DocumentID: "doc-a"}

	err := CheckSlugUnique(context.Background(), src, SlugCheck{
		Slug: "audio", Locale: "en", ID: 9, IsUpdate: true,
	})
	require.NoError(t, err, "même document logique retrouvé via le store")
}
