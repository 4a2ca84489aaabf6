package commerce

import (
	"context"
	"sync"
	"testing"

	"omnio_back_end/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGetOrCreateCartIdempotent(t *testing.T) {
	ctx := context.Background()
	service := NewCartService(newMemStore())

	first, err := service.GetOrCreateCart(ctx, "user-1")
	require.NoError(t, err)
	second, err := service.GetOrCreateCart(ctx, "user-1")
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID, "deux appels doivent retourner le même panier")
}

func TestGetCartNilWhenAbsent(t *testing.T) {
	ctx := context.Background()
	service := NewCartService(newMemStore())

	cart, err := service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Nil(t, cart)
}

func TestAddItemMergesQuantity(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	service := NewCartService(mem)

	_, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 2)
	require.NoError(t, err)
	cart, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "même produit = un seul item")
	require.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemByDocumentID(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", DocumentID: "doc-42", Price: 10})
	service := NewCartService(mem)

	cart, err := service.AddItem(ctx, "user-1", ProductByDocumentID("doc-42"), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, product.ID, cart.Items[0].Product.ID)
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus"})
	service := NewCartService(mem)

	_, err := service.AddItem(ctx, "user-1", ProductRef{}, 1)
	require.Equal(t, EINVALID, ErrorCode(err))

	_, err = service.AddItem(ctx, "user-1", ProductByID(product.ID), 0)
	require.Equal(t, EINVALID, ErrorCode(err))

	_, err = service.AddItem(ctx, "user-1", ProductByID(999), 1)
	require.Equal(t, EINVALID, ErrorCode(err))

	_, err = service.AddItem(ctx, "user-1", ProductByDocumentID("doc-inconnu"), 1)
	require.Equal(t, EINVALID, ErrorCode(err))

	_, err = service.AddItem(ctx, "", ProductByID(product.ID), 1)
	require.Equal(t, EUNAUTHORIZED, ErrorCode(err))
}

func TestUpdateItemZeroQuantityDeletes(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus"})
	service := NewCartService(mem)

	cart, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = service.UpdateItem(ctx, "user-1", itemID, 0)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestUpdateItemNegativeQuantityRejected(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus"})
	service := NewCartService(mem)

	cart, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 2)
	require.NoError(t, err)

	_, err = service.UpdateItem(ctx, "user-1", cart.Items[0].ID, -1)
	require.Equal(t, EINVALID, ErrorCode(err))
}

func TestMutationsOnForeignItemForbidden(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus"})
	service := NewCartService(mem)

	cart, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	_, err = service.UpdateItem(ctx, "user-2", itemID, 3)
	require.Equal(t, EFORBIDDEN, ErrorCode(err))

	_, err = service.RemoveItem(ctx, "user-2", itemID)
	require.Equal(t, EFORBIDDEN, ErrorCode(err))

	_, err = service.RemoveItem(ctx, "user-1", 999)
	require.Equal(t, ENOTFOUND, ErrorCode(err))
}

func TestPopulatePrunesDanglingProducts(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	kept := mem.addProduct(models.Product{Name: "Nimbus"})
	dropped := mem.addProduct(models.Product{Name: "Fantôme"})
	service := NewCartService(mem)

	_, err := service.AddItem(ctx, "user-1", ProductByID(kept.ID), 1)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "user-1", ProductByID(dropped.ID), 1)
	require.NoError(t, err)

	mem.removeProduct(dropped.ID)

	cart, err := service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "l'item au produit disparu doit être élagué")
	require.Equal(t, kept.ID, cart.Items[0].Product.ID)
}

func TestPopulateAttachesCategory(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	mem.categories[7] = &models.Category{ID: 7, Name: "Audio"}
	product := mem.addProduct(models.Product{Name: "Nimbus", CategoryID: 7})
	service := NewCartService(mem)

	cart, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)
	require.NotNil(t, cart.Items[0].Product.Category)
	require.Equal(t, "Audio", cart.Items[0].Product.Category.Name)
}

// Des ajouts concurrents du même produit ne doivent jamais produire deux
// items : le verrou par utilisateur ferme la course find-or-create.
func TestConcurrentAddItemSingleLine(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus"})
	service := NewCartService(mem)

	const workers = 16
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := service.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	cart, err := service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, workers, cart.Items[0].Quantity)
}
