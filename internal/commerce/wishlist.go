package commerce

import (
	"context"

	"omnio_back_end/internal/models"
)

// WishlistStore : contrat du store pour la liste d'envies
type WishlistStore interface {
	FindWishlistByUser(ctx context.Context, userID string) (*models.Wishlist, error)
	CreateWishlist(ctx context.Context, userID string) (*models.Wishlist, error)
	UpdateWishlistProducts(ctx context.Context, wishlistID int64, productIDs []int64) error

	FindProductByID(ctx context.Context, id int64) (*models.Product, error)
	FindCategoryByID(ctx context.Context, id int64) (*models.Category, error)
}

// WishlistService : au plus une liste d'envies par utilisateur, créée à la
// demande comme le panier.
type WishlistService struct {
	store WishlistStore
}

func NewWishlistService(store WishlistStore) *WishlistService {
	return &WishlistService{store: store}
}

// Get retourne la liste d'envies peuplée (doublons et références mortes
// filtrés défensivement à la lecture).
func (s *WishlistService) Get(ctx context.Context, userID string) (*models.Wishlist, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	wl, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

// Add ajoute un produit à la liste (sans doublon)
func (s *WishlistService) Add(ctx context.Context, userID string, productID int64) (*models.Wishlist, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	product, err := s.store.FindProductByID(ctx, productID)
	if err != nil {
		return nil, Internal("impossible de résoudre le produit", err)
	}
	if product == nil {
		return nil, Errorf(ENOTFOUND, "produit introuvable")
	}

	wl, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, id := range wl.ProductIDs {
		if id == productID {
			return s.Get(ctx, userID) // déjà présent
		}
	}
	wl.ProductIDs = append(wl.ProductIDs, productID)
	if err := s.store.UpdateWishlistProducts(ctx, wl.ID, wl.ProductIDs); err != nil {
		return nil, Internal("impossible d'ajouter à la liste d'envies", err)
	}

	if err := s.populate(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

// Remove retire un produit de la liste
func (s *WishlistService) Remove(ctx context.Context, userID string, productID int64) (*models.Wishlist, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	wl, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]int64, 0, len(wl.ProductIDs))
	for _, id := range wl.ProductIDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	wl.ProductIDs = kept
	if err := s.store.UpdateWishlistProducts(ctx, wl.ID, wl.ProductIDs); err != nil {
		return nil, Internal("impossible de retirer de la liste d'envies", err)
	}

	if err := s.populate(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

func (s *WishlistService) getOrCreate(ctx context.Context, userID string) (*models.Wishlist, error) {
	wl, err := s.store.FindWishlistByUser(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de récupérer la liste d'envies", err)
	}
	if wl != nil {
		return wl, nil
	}
	wl, err = s.store.CreateWishlist(ctx, userID)
	if err != nil {
		return nil, Internal("impossible de créer la liste d'envies", err)
	}
	return wl, nil
}

func (s *WishlistService) populate(ctx context.Context, wl *models.Wishlist) error {
	seen := make(map[int64]bool, len(wl.ProductIDs))
	wl.Products = make([]models.Product, 0, len(wl.ProductIDs))
	for _, id := range wl.ProductIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		product, err := s.store.FindProductByID(ctx, id)
		if err != nil {
			return Internal("impossible de récupérer la liste d'envies", err)
		}
		if product == nil {
			continue // référence morte
		}
		if product.CategoryID != 0 {
			if cat, err := s.store.FindCategoryByID(ctx, product.CategoryID); err == nil && cat != nil {
				product.Category = cat
			}
		}
		wl.Products = append(wl.Products, *product)
	}
	return nil
}
