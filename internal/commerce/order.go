package commerce

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"omnio_back_end/internal/models"
)

// OrderStore : écritures et lectures nécessaires au passage de commande
type OrderStore interface {
	FindCartByUser(ctx context.Context, userID string) (*models.Cart, error)
	FindCartItems(ctx context.Context, cartID int64) ([]models.CartItem, error)
	FindProductByID(ctx context.Context, id int64) (*models.Product, error)
	DeleteCartItem(ctx context.Context, itemID int64) error

	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	FindOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindOrderByID(ctx context.Context, id int64) (*models.Order, error)
}

// OrderService convertit le panier courant en commande immuable.
type OrderService struct {
	store OrderStore
	now   func() time.Time
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// PlaceOrder fige le contenu du panier en instantané (copie par valeur :
// modifier un produit ensuite ne change pas les commandes passées), crée la
// commande au statut "paid" (paiement simulé, pas de passerelle), puis vide
// le panier. Le nettoyage est best-effort : un échec de suppression est
// journalisé et n'annule pas la commande. L'opération n'est pas idempotente,
// ne pas réessayer à l'aveugle après un échec partiel.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string) (*models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	cart, err := s.store.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de récupérer le panier", err)
	}
	if cart == nil {
		return nil, Errorf(EINVALID, "le panier est vide")
	}

	items, err := s.store.FindCartItems(ctx, cart.ID)
	if err != nil {
		return nil, Internal("impossible de récupérer les articles", err)
	}
	if len(items) == 0 {
		return nil, Errorf(EINVALID, "le panier est vide")
	}

	var total float64
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.store.FindProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, Internal("impossible de récupérer les articles", err)
		}
		if product == nil {
			continue // référence morte, ignorée silencieusement
		}
		total += product.Price * float64(item.Quantity)
		snapshot = append(snapshot, models.OrderItem{
			ProductID:  product.ID,
			DocumentID: product.DocumentID,
			Name:       product.Name,
			Price:      product.Price,
			Quantity:   item.Quantity,
			Image:      product.Image,
		})
	}
	if len(snapshot) == 0 {
		return nil, Errorf(EINVALID, "aucun article valide dans le panier")
	}

	order := &models.Order{
		OrderNumber:   s.newOrderNumber(),
		UserID:        userID,
		Items:         snapshot,
		Total:         total,
		State:         "paid",
		PaymentMethod: "Credit Card",
		CreatedAt:     s.now(),
	}

	created, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		return nil, Internal("impossible de créer la commande", err)
	}

	// vider le panier : toutes les suppressions sont tentées
	for _, item := range items {
		if err := s.store.DeleteCartItem(ctx, item.ID); err != nil {
			log.Printf("⚠️ Échec suppression article %d après commande %s: %v",
				item.ID, created.OrderNumber, err)
		}
	}

	return created, nil
}

// newOrderNumber : ORD-<epoch ms>-<0..999>. La collision est possible mais
// l'index unique en base rejette le doublon.
func (s *OrderService) newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%d", s.now().UnixMilli(), rand.Intn(1000))
}

// MyOrders retourne les commandes de l'utilisateur, plus récentes d'abord
func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	orders, err := s.store.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de récupérer les commandes", err)
	}
	return orders, nil
}

// OrderByID retourne une commande de l'utilisateur. Une commande étrangère
// répond "introuvable" : on ne révèle pas son existence.
func (s *OrderService) OrderByID(ctx context.Context, userID string, id int64) (*models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	order, err := s.store.FindOrderByID(ctx, id)
	if err != nil {
		return nil, Internal("impossible de récupérer la commande", err)
	}
	if order == nil || order.UserID != userID {
		return nil, Errorf(ENOTFOUND, "commande introuvable")
	}
	return order, nil
}
