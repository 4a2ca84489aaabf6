package commerce

import (
	"context"
	"sync"

	"omnio_back_end/internal/models"
)

// ProductRef identifie un produit soit par id numérique, soit par
// documentId. Résolu une seule fois à l'entrée de AddItem.
type ProductRef struct {
	id    int64
	docID string
}

func ProductByID(id int64) ProductRef            { return ProductRef{id: id} }
func ProductByDocumentID(docID string) ProductRef { return ProductRef{docID: docID} }

func (r ProductRef) IsZero() bool { return r.id == 0 && r.docID == "" }

// CartStore est le contrat minimal attendu du store d'entités par le
// gestionnaire de panier. Implémenté par store.Store ; doublé d'un fake en
// mémoire dans les tests.
type CartStore interface {
	// FindCartByUser retourne le panier de l'utilisateur, nil si absent.
	FindCartByUser(ctx context.Context, userID string) (*models.Cart, error)
	FindCartByID(ctx context.Context, cartID int64) (*models.Cart, error)
	CreateCart(ctx context.Context, userID string) (*models.Cart, error)

	FindCartItems(ctx context.Context, cartID int64) ([]models.CartItem, error)
	FindCartItemByID(ctx context.Context, itemID int64) (*models.CartItem, error)
	FindCartItemByProduct(ctx context.Context, cartID, productID int64) (*models.CartItem, error)
	CreateCartItem(ctx context.Context, cartID, productID int64, quantity int) (*models.CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, itemID int64, quantity int) error
	DeleteCartItem(ctx context.Context, itemID int64) error

	FindProductByID(ctx context.Context, id int64) (*models.Product, error)
	FindProductByDocumentID(ctx context.Context, docID string) (*models.Product, error)
	FindCategoryByID(ctx context.Context, id int64) (*models.Category, error)
}

// CartService garantit l'invariant « un panier par utilisateur » et
// expose les mutations du panier de l'utilisateur authentifié.
type CartService struct {
	store CartStore
	locks sync.Map // userID → *sync.Mutex
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

// lock sérialise les mutations du panier d'un même utilisateur : ferme la
// course lire-puis-écrire du find-or-create (panier et fusion d'items).
func (s *CartService) lock(userID string) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// GetCart retourne le panier peuplé de l'utilisateur, nil s'il n'existe pas.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	cart, err := s.store.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de récupérer le panier", err)
	}
	if cart == nil {
		return nil, nil
	}
	if err := s.populate(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetOrCreateCart retourne le panier existant ou en crée un. Appelée deux
// fois de suite, elle retourne le même panier.
func (s *CartService) GetOrCreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	unlock := s.lock(userID)
	defer unlock()
	return s.getOrCreate(ctx, userID)
}

// getOrCreate suppose le verrou utilisateur déjà pris
func (s *CartService) getOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.store.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de récupérer le panier", err)
	}
	if cart != nil {
		return cart, nil
	}
	cart, err = s.store.CreateCart(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de créer le panier", err)
	}
	return cart, nil
}

// AddItem résout le produit, puis fusionne la quantité dans l'item existant
// du panier ou en crée un nouveau. Retourne le panier repeuplé.
func (s *CartService) AddItem(ctx context.Context, userID string, ref ProductRef, quantity int) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if ref.IsZero() {
		return nil, Errorf(EINVALID, "le produit est requis")
	}
	if quantity <= 0 {
		return nil, Errorf(EINVALID, "la quantité doit être un entier positif")
	}

	product, err := s.resolveProduct(ctx, ref)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(userID)
	defer unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindCartItemByProduct(ctx, cart.ID, product.ID)
	if err != nil {
		return nil, Internal("impossible d'ajouter l'article", err)
	}

	if existing != nil {
		err = s.store.UpdateCartItemQuantity(ctx, existing.ID, existing.Quantity+quantity)
	} else {
		_, err = s.store.CreateCartItem(ctx, cart.ID, product.ID, quantity)
	}
	if err != nil {
		return nil, Internal("impossible d'ajouter l'article", err)
	}

	if err := s.populate(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem change la quantité d'un item après contrôle de propriété.
// Une quantité de zéro supprime l'item.
func (s *CartService) UpdateItem(ctx context.Context, userID string, itemID int64, quantity int) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if quantity < 0 {
		return nil, Errorf(EINVALID, "la quantité doit être un entier positif")
	}

	item, cart, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(userID)
	defer unlock()

	if quantity == 0 {
		err = s.store.DeleteCartItem(ctx, item.ID)
	} else {
		err = s.store.UpdateCartItemQuantity(ctx, item.ID, quantity)
	}
	if err != nil {
		return nil, Internal("impossible de mettre à jour l'article", err)
	}

	if err := s.populate(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem supprime un item après contrôle de propriété
func (s *CartService) RemoveItem(ctx context.Context, userID string, itemID int64) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	item, cart, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(userID)
	defer unlock()

	if err := s.store.DeleteCartItem(ctx, item.ID); err != nil {
		return nil, Internal("impossible de supprimer l'article", err)
	}

	if err := s.populate(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ownedItem charge un item et son panier, puis vérifie que le panier
// appartient bien à l'utilisateur. C'est l'unique frontière d'autorisation
// du storefront : un item étranger répond "forbidden", jamais son contenu.
func (s *CartService) ownedItem(ctx context.Context, userID string, itemID int64) (*models.CartItem, *models.Cart, error) {
	item, err := s.store.FindCartItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, Internal("impossible de récupérer l'article", err)
	}
	if item == nil {
		return nil, nil, Errorf(ENOTFOUND, "article introuvable")
	}
	cart, err := s.store.FindCartByID(ctx, item.CartID)
	if err != nil {
		return nil, nil, Internal("impossible de récupérer le panier", err)
	}
	if cart == nil {
		return nil, nil, Errorf(ENOTFOUND, "article introuvable")
	}
	if cart.UserID != userID {
		return nil, nil, ErrForbidden
	}
	return item, cart, nil
}

func (s *CartService) resolveProduct(ctx context.Context, ref ProductRef) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if ref.docID != "" {
		product, err = s.store.FindProductByDocumentID(ctx, ref.docID)
	} else {
		product, err = s.store.FindProductByID(ctx, ref.id)
	}
	if err != nil {
		return nil, Internal("impossible de résoudre le produit", err)
	}
	if product == nil {
		// référence invalide dans la requête, pas une ressource manquante
		return nil, Errorf(EINVALID, "produit introuvable")
	}
	return product, nil
}

// populate hydrate les items du panier avec leur produit (image et
// catégorie comprises) et élague les références mortes : un item dont le
// produit a disparu est ignoré, jamais une erreur. Point unique
// d'hydratation, appliqué à chaque lecture de panier.
func (s *CartService) populate(ctx context.Context, cart *models.Cart) error {
	items, err := s.store.FindCartItems(ctx, cart.ID)
	if err != nil {
		return Internal("impossible de récupérer les articles", err)
	}

	cart.Items = make([]models.CartItem, 0, len(items))
	for _, item := range items {
		product, err := s.store.FindProductByID(ctx, item.ProductID)
		if err != nil {
			return Internal("impossible de récupérer les articles", err)
		}
		if product == nil {
			continue // référence morte
		}
		if product.CategoryID != 0 {
			if cat, err := s.store.FindCategoryByID(ctx, product.CategoryID); err == nil && cat != nil {
				product.Category = cat
			}
		}
		item.Product = product
		cart.Items = append(cart.Items, item)
	}
	return nil
}
