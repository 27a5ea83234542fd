package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/hqvu/furnistore/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShippingInfo is the checkout form. Validated at the handler before the
// service sees it.
type ShippingInfo struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Phone      string `json:"phone" validate:"required,min=8,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address" validate:"required,max=500"`
	ProvinceID int    `json:"province_id" validate:"required"`
	DistrictID int    `json:"district_id" validate:"required"`
	CommuneID  int    `json:"commune_id"`
	Note       string `json:"note" validate:"max=2000"`
}

type CheckoutService struct {
	tx            repositories.Transactor
	cartRepo      repositories.CartRepository
	cartItemRepo  repositories.CartItemRepository
	orderRepo     repositories.OrderRepository
	promotionSvc  *PromotionService
	promotionRepo repositories.PromotionRepository
	usageRepo     repositories.PromotionUsageRepository
}

func NewCheckoutService(
	tx repositories.Transactor,
	cartRepo repositories.CartRepository,
	cartItemRepo repositories.CartItemRepository,
	orderRepo repositories.OrderRepository,
	promotionSvc *PromotionService,
	promotionRepo repositories.PromotionRepository,
	usageRepo repositories.PromotionUsageRepository,
) *CheckoutService {
	return &CheckoutService{
		tx:            tx,
		cartRepo:      cartRepo,
		cartItemRepo:  cartItemRepo,
		orderRepo:     orderRepo,
		promotionSvc:  promotionSvc,
		promotionRepo: promotionRepo,
		usageRepo:     usageRepo,
	}
}

// PlaceOrder snapshots the owner's pending cart into an immutable order.
// Everything happens in one transaction: the order and its items, the
// cart's pending -> ordered transition, and (when a code was supplied)
// the promotion usage increment plus its audit row. A client-supplied
// discount is never trusted; the code is revalidated against the
// freshly computed subtotal.
func (s *CheckoutService) PlaceOrder(ctx context.Context, owner models.OwnerContext, info ShippingInfo, promotionCode string) (*models.Order, error) {
	var order *models.Order

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		cart, err := s.cartRepo.FindPendingByOwner(ctx, tx, owner)
		if err != nil {
			return fmt.Errorf("failed to find cart: %w", err)
		}
		if cart == nil {
			return ErrCartNotFound
		}

		cartItems, err := s.cartItemRepo.FindByCart(ctx, tx, cart.ID)
		if err != nil {
			return fmt.Errorf("failed to load cart items: %w", err)
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		subtotal := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			amount := item.Subtotal()
			subtotal = subtotal.Add(amount)
			sku := ""
			if item.Product != nil {
				sku = item.Product.Slug
			}
			orderItems = append(orderItems, models.OrderItem{
				ProductID:  item.ProductID,
				ProductSku: sku,
				Price:      item.Price,
				Quantity:   item.Quantity,
				Amount:     amount,
			})
		}

		discount := decimal.Zero
		var promotion *models.Promotion
		if promotionCode != "" {
			result, promo, err := s.promotionSvc.ValidateForOrder(ctx, tx, promotionCode, subtotal)
			if err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("%w: %s", ErrInvalidPromotion, result.Message)
			}
			discount = result.Discount
			promotion = promo

			rows, err := s.promotionRepo.IncrementUsage(ctx, tx, promotion.ID)
			if err != nil {
				return fmt.Errorf("failed to increment promotion usage: %w", err)
			}
			if rows == 0 {
				return ErrPromotionExhausted
			}
		}

		shippingFee := decimal.Zero
		order = &models.Order{
			Code:        helpers.GenerateOrderCode(time.Now()),
			Name:        info.Name,
			Phone:       info.Phone,
			Email:       info.Email,
			Address:     info.Address,
			ProvinceID:  info.ProvinceID,
			DistrictID:  info.DistrictID,
			CommuneID:   info.CommuneID,
			Note:        info.Note,
			Status:      models.OrderStatusPending,
			Amount:      calc.OrderAmount(subtotal, discount, shippingFee),
			Discount:    discount,
			ShippingFee: shippingFee,
			OrderItems:  orderItems,
		}
		if owner.IsUser() {
			order.UserID = &owner.UserID
		}
		if promotion != nil {
			order.PromotionCode = &promotion.Code
		}

		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		rows, err := s.cartRepo.MarkOrdered(ctx, tx, cart.ID)
		if err != nil {
			return fmt.Errorf("failed to mark cart ordered: %w", err)
		}
		if rows == 0 {
			return ErrCheckoutConflict
		}

		if promotion != nil {
			usage := &models.PromotionUsage{
				Phone:       info.Phone,
				PromotionID: promotion.ID,
				OrderID:     order.ID,
			}
			if err := s.usageRepo.Create(ctx, tx, usage); err != nil {
				return fmt.Errorf("failed to record promotion usage: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("PlaceOrder: order %s placed, amount %s, discount %s", order.Code, order.Amount, order.Discount)
	return order, nil
}
