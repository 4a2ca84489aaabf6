package commerce

import (
	"context"
	"errors"
	"sync"

	"omnio_back_end/internal/models"
)

var errAssert = errors.New("panne simulée du store")

// memStore est un store d'entités en mémoire pour les tests des services.
// Même sémantique que store.Store : nil quand l'entité n'existe pas.
type memStore struct {
	mu     sync.Mutex
	nextID int64

	carts      map[int64]*models.Cart
	items      map[int64]*models.CartItem
	products   map[int64]*models.Product
	categories map[int64]*models.Category
	orders     map[int64]*models.Order
	wishlists  map[int64]*models.Wishlist

	// injectable pour simuler des pannes du store
	failDeleteItem bool
	deleteFailures int
}

func newMemStore() *memStore {
	return &memStore{
		carts:      map[int64]*models.Cart{},
		items:      map[int64]*models.CartItem{},
		products:   map[int64]*models.Product{},
		categories: map[int64]*models.Category{},
		orders:     map[int64]*models.Order{},
		wishlists:  map[int64]*models.Wishlist{},
	}
}

func (m *memStore) newID() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) addProduct(p models.Product) *models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == 0 {
		p.ID = m.newID()
	}
	copied := p
	m.products[p.ID] = &copied
	return &copied
}

func (m *memStore) removeProduct(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
}

func (m *memStore) FindCartByUser(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cart := range m.carts {
		if cart.UserID == userID {
			copied := *cart
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCartByID(_ context.Context, cartID int64) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cart, ok := m.carts[cartID]; ok {
		copied := *cart
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) CreateCart(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := &models.Cart{ID: m.newID(), UserID: userID}
	m.carts[cart.ID] = cart
	copied := *cart
	return &copied, nil
}

func (m *memStore) FindCartItems(_ context.Context, cartID int64) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CartItem
	// ordre d'insertion = ordre des ids
	for id := int64(1); id <= m.nextID; id++ {
		if item, ok := m.items[id]; ok && item.CartID == cartID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *memStore) FindCartItemByID(_ context.Context, itemID int64) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[itemID]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) FindCartItemByProduct(_ context.Context, cartID, productID int64) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.CartID == cartID && item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateCartItem(_ context.Context, cartID, productID int64, quantity int) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := &models.CartItem{ID: m.newID(), CartID: cartID, ProductID: productID, Quantity: quantity}
	m.items[item.ID] = item
	copied := *item
	return &copied, nil
}

func (m *memStore) UpdateCartItemQuantity(_ context.Context, itemID int64, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[itemID]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (m *memStore) DeleteCartItem(_ context.Context, itemID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDeleteItem {
		m.deleteFailures++
		return errAssert
	}
	delete(m.items, itemID)
	return nil
}

func (m *memStore) FindProductByID(_ context.Context, id int64) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) FindProductByDocumentID(_ context.Context, docID string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.DocumentID == docID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCategoryByID(_ context.Context, id int64) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.newID()
	copied := *order
	m.orders[order.ID] = &copied
	result := copied
	return &result, nil
}

func (m *memStore) FindOrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for id := m.nextID; id >= 1; id-- {
		if order, ok := m.orders[id]; ok && order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (m *memStore) FindOrderByID(_ context.Context, id int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order, ok := m.orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) FindWishlistByUser(_ context.Context, userID string) (*models.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, wl := range m.wishlists {
		if wl.UserID == userID {
			copied := *wl
			copied.ProductIDs = append([]int64(nil), wl.ProductIDs...)
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateWishlist(_ context.Context, userID string) (*models.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wl := &models.Wishlist{ID: m.newID(), UserID: userID, ProductIDs: []int64{}}
	m.wishlists[wl.ID] = wl
	copied := *wl
	return &copied, nil
}

func (m *memStore) UpdateWishlistProducts(_ context.Context, wishlistID int64, productIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if wl, ok := m.wishlists[wishlistID]; ok {
		wl.ProductIDs = append([]int64(nil), productIDs...)
	}
	return nil
}

// contrats vérifiés à la compilation
var (
	_ CartStore     = (*memStore)(nil)
	_ OrderStore    = (*memStore)(nil)
	_ WishlistStore = (*memStore)(nil)
)
