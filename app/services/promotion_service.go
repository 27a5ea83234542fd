package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/hqvu/furnistore/app/utils/calc"
	"github.com/hqvu/furnistore/app/utils/format"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	msgCodeNotFound  = "promotion code does not exist or is inactive"
	msgCodeExpired   = "promotion code has expired"
	msgCodeExhausted = "promotion code has reached its usage limit"
	msgApplied       = "promotion applied"
)

// ValidationResult is what the cart page shows after a code is applied.
// IsFreeShip and NumberProduct are echoed for display; the validator does
// not enforce them.
type ValidationResult struct {
	Valid         bool            `json:"valid"`
	Discount      decimal.Decimal `json:"discount"`
	Message       string          `json:"message"`
	Code          string          `json:"code,omitempty"`
	Type          string          `json:"type,omitempty"`
	Value         decimal.Decimal `json:"value"`
	IsFreeShip    bool            `json:"is_free_ship,omitempty"`
	NumberProduct int             `json:"number_product,omitempty"`
}

type PromotionService struct {
	promotionRepo repositories.PromotionRepository
}

func NewPromotionService(promotionRepo repositories.PromotionRepository) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo}
}

// Validate runs the eligibility checks in order, short-circuiting on the
// first failure, and returns the clamped discount for a valid code.
func (s *PromotionService) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*ValidationResult, error) {
	result, _, err := s.validate(ctx, nil, code, subtotal)
	return result, err
}

// ValidateForOrder is the checkout-time variant: it runs inside the
// order transaction and hands back the promotion row so usage can be
// incremented against it.
func (s *PromotionService) ValidateForOrder(ctx context.Context, tx *gorm.DB, code string, subtotal decimal.Decimal) (*ValidationResult, *models.Promotion, error) {
	return s.validate(ctx, tx, code, subtotal)
}

func (s *PromotionService) validate(ctx context.Context, tx *gorm.DB, code string, subtotal decimal.Decimal) (*ValidationResult, *models.Promotion, error) {
	promotion, err := s.promotionRepo.FindActiveByCode(ctx, tx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up promotion: %w", err)
	}
	if promotion == nil {
		return &ValidationResult{Valid: false, Message: msgCodeNotFound}, nil, nil
	}

	result := evaluatePromotion(promotion, subtotal, time.Now())
	if !result.Valid {
		return result, nil, nil
	}
	return result, promotion, nil
}

// evaluatePromotion applies the eligibility rules to an already-loaded
// active promotion. Kept free of storage so the rules are testable on
// their own.
func evaluatePromotion(p *models.Promotion, subtotal decimal.Decimal, now time.Time) *ValidationResult {
	if p.Expired(now) {
		return &ValidationResult{Valid: false, Message: msgCodeExpired}
	}

	if p.Exhausted() {
		return &ValidationResult{Valid: false, Message: msgCodeExhausted}
	}

	if subtotal.LessThan(p.MinAmount) {
		return &ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("a minimum order of %s is required for this code (%s short)", format.VND(p.MinAmount), format.VND(p.MinAmount.Sub(subtotal))),
		}
	}

	var discount decimal.Decimal
	if p.Type == models.PromotionTypePercent {
		discount = calc.PercentDiscount(subtotal, p.Discount, p.MaxAmount)
	} else {
		discount = p.Discount
	}
	discount = calc.ClampDiscount(discount, subtotal)

	return &ValidationResult{
		Valid:         true,
		Discount:      discount,
		Message:       msgApplied,
		Code:          p.Code,
		Type:          p.Type,
		Value:         p.Discount,
		IsFreeShip:    p.IsFreeShip,
		NumberProduct: p.NumberProduct,
	}
}

// ListActive returns the promotions the voucher modal offers.
func (s *PromotionService) ListActive(ctx context.Context) ([]models.Promotion, error) {
	return s.promotionRepo.ListActive(ctx, time.Now())
}
