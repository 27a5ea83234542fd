package services

import (
	"context"
	"fmt"
	"log"

	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"gorm.io/gorm"
)

type CartService struct {
	tx           repositories.Transactor
	cartRepo     repositories.CartRepository
	cartItemRepo repositories.CartItemRepository
	productRepo  repositories.ProductRepository
}

func NewCartService(
	tx repositories.Transactor,
	cartRepo repositories.CartRepository,
	cartItemRepo repositories.CartItemRepository,
	productRepo repositories.ProductRepository,
) *CartService {
	return &CartService{
		tx:           tx,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// AddItem puts quantity units of a product into the owner's pending
// cart, creating the cart lazily. The unit price is snapshotted at add
// time (sale price when one is set). Returns the new cart count.
func (s *CartService) AddItem(ctx context.Context, owner models.OwnerContext, productID string, quantity int) (int, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	if product == nil || !product.Status {
		return 0, ErrProductNotFound
	}
	if product.Inventory < quantity {
		return 0, fmt.Errorf("%w for %s (available: %d)", ErrInsufficientStock, product.Name, product.Inventory)
	}

	cart, err := s.getOrCreateCart(ctx, owner)
	if err != nil {
		return 0, err
	}

	if err := s.cartItemRepo.UpsertAdd(ctx, nil, cart.ID, productID, quantity, product.EffectivePrice()); err != nil {
		return 0, fmt.Errorf("failed to add item to cart %s: %w", cart.ID, err)
	}

	return s.cartItemRepo.SumQuantity(ctx, cart.ID)
}

// GetCart returns the owner's cart count and, when detail is requested,
// the line items with their products. An owner with no pending cart gets
// a zero count, not an error.
func (s *CartService) GetCart(ctx context.Context, owner models.OwnerContext, detail bool) (int, []models.CartItem, error) {
	cart, err := s.cartRepo.FindPendingByOwner(ctx, nil, owner)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to find cart: %w", err)
	}
	if cart == nil {
		return 0, nil, nil
	}

	count, err := s.cartItemRepo.SumQuantity(ctx, cart.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count cart items: %w", err)
	}

	if !detail {
		return count, nil, nil
	}

	items, err := s.cartItemRepo.FindByCartWithProducts(ctx, cart.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	return count, items, nil
}

// UpdateItem sets a line item's quantity; zero or less removes it.
func (s *CartService) UpdateItem(ctx context.Context, owner models.OwnerContext, itemID string, quantity int) (int, error) {
	cart, err := s.cartRepo.FindPendingByOwner(ctx, nil, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to find cart: %w", err)
	}
	if cart == nil {
		return 0, ErrCartNotFound
	}

	if quantity <= 0 {
		if err := s.cartItemRepo.Delete(ctx, cart.ID, itemID); err != nil {
			return 0, fmt.Errorf("failed to remove cart item: %w", err)
		}
		return s.cartItemRepo.SumQuantity(ctx, cart.ID)
	}

	item, err := s.cartItemRepo.FindByID(ctx, cart.ID, itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to load cart item: %w", err)
	}
	if item == nil {
		return 0, ErrCartItemNotFound
	}

	if err := s.cartItemRepo.UpdateQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return 0, fmt.Errorf("failed to update cart item: %w", err)
	}
	return s.cartItemRepo.SumQuantity(ctx, cart.ID)
}

// RemoveItem deletes a line item from the owner's pending cart.
func (s *CartService) RemoveItem(ctx context.Context, owner models.OwnerContext, itemID string) (int, error) {
	cart, err := s.cartRepo.FindPendingByOwner(ctx, nil, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to find cart: %w", err)
	}
	if cart == nil {
		return 0, ErrCartNotFound
	}

	if err := s.cartItemRepo.Delete(ctx, cart.ID, itemID); err != nil {
		return 0, fmt.Errorf("failed to remove cart item: %w", err)
	}
	return s.cartItemRepo.SumQuantity(ctx, cart.ID)
}

// MergeOnAuth reconciles a guest cart into the user's cart right after
// login or registration. With no user cart the guest cart is reassigned
// in place; otherwise quantities for shared products are summed, the
// remaining lines are moved over and the guest cart is deleted. The
// whole merge runs in one transaction. Callers treat failures as
// best-effort: authentication must not be blocked by a merge error.
func (s *CartService) MergeOnAuth(ctx context.Context, sessionID, userID string) error {
	if sessionID == "" || userID == "" {
		return nil
	}

	return s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		guestCart, err := s.cartRepo.FindPendingByOwner(ctx, tx, models.OwnerGuest(sessionID))
		if err != nil {
			return fmt.Errorf("failed to find guest cart: %w", err)
		}
		if guestCart == nil {
			return nil
		}

		userCart, err := s.cartRepo.FindPendingByOwner(ctx, tx, models.OwnerUser(userID))
		if err != nil {
			return fmt.Errorf("failed to find user cart: %w", err)
		}

		if userCart == nil {
			return s.cartRepo.ReassignToUser(ctx, tx, guestCart.ID, userID)
		}

		guestItems, err := s.cartItemRepo.FindByCart(ctx, tx, guestCart.ID)
		if err != nil {
			return fmt.Errorf("failed to load guest cart items: %w", err)
		}

		for _, item := range guestItems {
			if err := s.cartItemRepo.UpsertAdd(ctx, tx, userCart.ID, item.ProductID, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("failed to merge item %s: %w", item.ID, err)
			}
		}

		if err := s.cartItemRepo.DeleteByCart(ctx, tx, guestCart.ID); err != nil {
			return fmt.Errorf("failed to delete guest cart items: %w", err)
		}
		return s.cartRepo.Delete(ctx, tx, guestCart.ID)
	})
}

func (s *CartService) getOrCreateCart(ctx context.Context, owner models.OwnerContext) (*models.Cart, error) {
	cart, err := s.cartRepo.FindPendingByOwner(ctx, nil, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{Status: models.CartStatusPending}
	if owner.IsUser() {
		cart.UserID = &owner.UserID
	} else {
		cart.SessionID = &owner.SessionID
	}
	if err := s.cartRepo.Create(ctx, nil, cart); err != nil {
		// A concurrent request may have created the cart first; fall
		// back to reading it.
		existing, findErr := s.cartRepo.FindPendingByOwner(ctx, nil, owner)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	log.Printf("CartService: created pending cart %s", cart.ID)
	return cart, nil
}
