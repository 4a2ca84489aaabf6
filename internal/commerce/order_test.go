package commerce

import (
	"context"
	"regexp"
	"strconv"
	"testing"
	"time"

	"omnio_back_end/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPlaceOrderEmptyCartRejected(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	orders := NewOrderService(mem)

	// pas de panier du tout
	_, err := orders.PlaceOrder(ctx, "user-1")
	require.Equal(t, EINVALID, ErrorCode(err))
	require.Equal(t, "le panier est vide", ErrorMessage(err))

	// panier existant mais vide
	carts := NewCartService(mem)
	_, err = carts.GetOrCreateCart(ctx, "user-1")
	require.NoError(t, err)
	_, err = orders.PlaceOrder(ctx, "user-1")
	require.Equal(t, EINVALID, ErrorCode(err))
}

// Exemple travaillé : 2 × 10.00 + 1 × 5.00 = 25.00
func TestPlaceOrderSnapshotTotal(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	first := mem.addProduct(models.Product{Name: "Nimbus", DocumentID: "doc-a", Price: 10.00, Image: "nimbus.jpg"})
	second := mem.addProduct(models.Product{Name: "Orbit", DocumentID: "doc-b", Price: 5.00})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(first.ID), 2)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "user-1", ProductByID(second.ID), 1)
	require.NoError(t, err)

	order, err := orders.PlaceOrder(ctx, "user-1")
	require.NoError(t, err)

	require.InDelta(t, 25.00, order.Total, 0.001)
	require.Equal(t, "paid", order.State)
	require.Equal(t, "Credit Card", order.PaymentMethod)
	require.Len(t, order.Items, 2)
	require.Equal(t, "Nimbus", order.Items[0].Name)
	require.Equal(t, 2, order.Items[0].Quantity)
	require.Equal(t, "doc-a", order.Items[0].DocumentID)
	require.Equal(t, "nimbus.jpg", order.Items[0].Image)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)

	_, err = orders.PlaceOrder(ctx, "user-1")
	require.NoError(t, err)

	cart, err := carts.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, cart.Items, "le panier doit être vidé après la commande")
}

// La copie est par valeur : changer le prix du produit après coup ne
// modifie pas la commande passée.
func TestOrderSnapshotImmutable(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)
	order, err := orders.PlaceOrder(ctx, "user-1")
	require.NoError(t, err)

	mem.mu.Lock()
	mem.products[product.ID].Price = 99
	mem.products[product.ID].Name = "Renommé"
	mem.mu.Unlock()

	reread, err := orders.OrderByID(ctx, "user-1", order.ID)
	require.NoError(t, err)
	require.InDelta(t, 10.00, reread.Items[0].Price, 0.001)
	require.Equal(t, "Nimbus", reread.Items[0].Name)
}

func TestPlaceOrderSkipsDanglingProducts(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	kept := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	dropped := mem.addProduct(models.Product{Name: "Fantôme", Price: 99})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(kept.ID), 1)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "user-1", ProductByID(dropped.ID), 1)
	require.NoError(t, err)

	mem.removeProduct(dropped.ID)

	order, err := orders.PlaceOrder(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.InDelta(t, 10.00, order.Total, 0.001)
}

func TestPlaceOrderAllDanglingRejected(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Fantôme", Price: 10})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)
	mem.removeProduct(product.ID)

	_, err = orders.PlaceOrder(ctx, "user-1")
	require.Equal(t, EINVALID, ErrorCode(err))
	require.Equal(t, "aucun article valide dans le panier", ErrorMessage(err))
}

// L'échec du vidage du panier est journalisé mais n'annule pas la commande
func TestPlaceOrderCleanupBestEffort(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)

	mem.failDeleteItem = true
	order, err := orders.PlaceOrder(ctx, "user-1")
	require.NoError(t, err, "la commande doit réussir malgré l'échec du nettoyage")
	require.NotNil(t, order)
	require.Equal(t, 1, mem.deleteFailures)
}

func TestOrderNumberFormat(t *testing.T) {
	frozen := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	service := &OrderService{now: func() time.Time { return frozen }}

	pattern := regexp.MustCompile(`^ORD-(\d+)-(\d{1,3})$`)
	for i := 0; i < 50; i++ {
		number := service.newOrderNumber()
		matches := pattern.FindStringSubmatch(number)
		require.NotNil(t, matches, "format inattendu: %s", number)
		require.Equal(t, strconv.FormatInt(frozen.UnixMilli(), 10), matches[1])
		suffix, err := strconv.Atoi(matches[2])
		require.NoError(t, err)
		require.Less(t, suffix, 1000)
	}
}

func TestOrderByIDOwnership(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	_, err := carts.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
	require.NoError(t, err)
	order, err := orders.PlaceOrder(ctx, "user-1")
	require.NoError(t, err)

	// une commande étrangère répond introuvable, pas interdit
	_, err = orders.OrderByID(ctx, "user-2", order.ID)
	require.Equal(t, ENOTFOUND, ErrorCode(err))

	mine, err := orders.OrderByID(ctx, "user-1", order.ID)
	require.NoError(t, err)
	require.Equal(t, order.OrderNumber, mine.OrderNumber)
}

func TestMyOrdersMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	mem := newMemStore()
	product := mem.addProduct(models.Product{Name: "Nimbus", Price: 10})
	carts := NewCartService(mem)
	orders := NewOrderService(mem)

	for i := 0; i < 3; i++ {
		_, err := carts.AddItem(ctx, "user-1", ProductByID(product.ID), 1)
		require.NoError(t, err)
		_, err = orders.PlaceOrder(ctx, "user-1")
		require.NoError(t, err)
	}

	list, err := orders.MyOrders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Greater(t, list[0].ID, list[2].ID)
}
