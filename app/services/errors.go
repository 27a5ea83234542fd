package services

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrCartItemNotFound  = errors.New("cart item not found")

	// ErrInvalidPromotion covers every validator rejection; the wrapped
	// message carries the user-facing reason.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// Retryable conflicts: a concurrent redemption took the last usage
	// slot, or a concurrent checkout consumed the cart.
	ErrPromotionExhausted = errors.New("promotion usage limit reached")
	ErrCheckoutConflict   = errors.New("cart was already checked out")
)
