package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"omnio_back_end/internal/commerce"
	"omnio_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Store vide : aucun produit, aucun panier. Suffisant pour vérifier les
// codes HTTP des chemins d'erreur du handler.
type emptyCartStore struct{}

func (emptyCartStore) FindCartByUser(context.Context, string) (*models.Cart, error) {
	return nil, nil
}
func (emptyCartStore) FindCartByID(context.Context, int64) (*models.Cart, error) { return nil, nil }
func (emptyCartStore) CreateCart(context.Context, string) (*models.Cart, error)  { return nil, nil }
func (emptyCartStore) FindCartItems(context.Context, int64) ([]models.CartItem, error) {
	return nil, nil
}
func (emptyCartStore) FindCartItemByID(context.Context, int64) (*models.CartItem, error) {
	return nil, nil
}
func (emptyCartStore) FindCartItemByProduct(context.Context, int64, int64) (*models.CartItem, error) {
	return nil, nil
}
func (emptyCartStore) CreateCartItem(context.Context, int64, int64, int) (*models.CartItem, error) {
	return nil, nil
}
func (emptyCartStore) UpdateCartItemQuantity(context.Context, int64, int) error { return nil }
func (emptyCartStore) DeleteCartItem(context.Context, int64) error              { return nil }
func (emptyCartStore) FindProductByID(context.Context, int64) (*models.Product, error) {
	return nil, nil
}
func (emptyCartStore) FindProductByDocumentID(context.Context, string) (*models.Product, error) {
	return nil, nil
}
func (emptyCartStore) FindCategoryByID(context.Context, int64) (*models.Category, error) {
	return nil, nil
}

var _ commerce.CartStore = emptyCartStore{}

func newCartRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	}
	h := NewCartHandler(commerce.NewCartService(emptyCartStore{}))
	r.POST("/api/carts/me/items", h.AddCartItem)
	r.PUT("/api/carts/me/items/:id", h.UpdateCartItem)
	r.DELETE("/api/carts/me/items/:id", h.DeleteCartItem)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemUnknownProductIsBadRequest(t *testing.T) {
	r := newCartRouter("user-1")

	w := doJSON(r, http.MethodPost, "/api/carts/me/items", `{"product": 42, "quantity": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/carts/me/items", `{"productDocumentId": "doc-inconnu", "quantity": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemInvalidInputIsBadRequest(t *testing.T) {
	r := newCartRouter("user-1")

	w := doJSON(r, http.MethodPost, "/api/carts/me/items", `{"quantity": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/carts/me/items", `{"product": 42, "quantity": 0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemWithoutUserIsUnauthorized(t *testing.T) {
	r := newCartRouter("")

	w := doJSON(r, http.MethodPost, "/api/carts/me/items", `{"product": 42, "quantity": 1}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartItemMutationsOnMissingItemAreNotFound(t *testing.T) {
	r := newCartRouter("user-1")

	w := doJSON(r, http.MethodPut, "/api/carts/me/items/7", `{"quantity": 3}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/carts/me/items/7", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
