package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hqvu/furnistore/app/models"
	"github.com/shopspring/decimal"
)

type checkoutFixture struct {
	svc           *CheckoutService
	cartRepo      *fakeCartRepo
	cartItemRepo  *fakeCartItemRepo
	orderRepo     *fakeOrderRepo
	promotionRepo *fakePromotionRepo
	usageRepo     *fakeUsageRepo
}

func newCheckoutFixture(promotions ...*models.Promotion) *checkoutFixture {
	f := &checkoutFixture{
		cartRepo:      newFakeCartRepo(),
		cartItemRepo:  newFakeCartItemRepo(),
		orderRepo:     newFakeOrderRepo(),
		promotionRepo: newFakePromotionRepo(promotions...),
		usageRepo:     newFakeUsageRepo(),
	}
	f.svc = NewCheckoutService(
		fakeTransactor{},
		f.cartRepo,
		f.cartItemRepo,
		f.orderRepo,
		NewPromotionService(f.promotionRepo),
		f.promotionRepo,
		f.usageRepo,
	)
	return f
}

func (f *checkoutFixture) seedCart(t *testing.T, owner models.OwnerContext, lines map[string]int) *models.Cart {
	t.Helper()
	cart := &models.Cart{Status: models.CartStatusPending}
	if owner.IsUser() {
		cart.UserID = &owner.UserID
	} else {
		cart.SessionID = &owner.SessionID
	}
	if err := f.cartRepo.Create(context.Background(), nil, cart); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	for productID, qty := range lines {
		if err := f.cartItemRepo.UpsertAdd(context.Background(), nil, cart.ID, productID, qty, decimal.NewFromInt(125000)); err != nil {
			t.Fatalf("seed cart item: %v", err)
		}
	}
	for _, item := range f.cartItemRepo.items {
		if item.CartID == cart.ID {
			item.Product = &models.Product{ID: item.ProductID, Slug: item.ProductID + "-oak-table"}
		}
	}
	return cart
}

func shippingInfo() ShippingInfo {
	return ShippingInfo{
		Name:       "Nguyễn Văn A",
		Phone:      "0901234567",
		Address:    "12 Lê Lợi",
		ProvinceID: 1,
		DistrictID: 2,
	}
}

func TestPlaceOrderWithFixedPromotion(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&models.Promotion{
		Code:      "WELCOME50K",
		Type:      models.PromotionTypeFixed,
		Discount:  decimal.NewFromInt(50000),
		MinAmount: decimal.NewFromInt(250000),
		Status:    models.PromotionStatusActive,
	})
	owner := models.OwnerUser("user-1")
	cart := f.seedCart(t, owner, map[string]int{"p1": 2}) // 2 x 125000 = 250000

	order, err := f.svc.PlaceOrder(ctx, owner, shippingInfo(), "welcome50k")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if !order.Discount.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Discount = %s, want 50000", order.Discount)
	}
	if !order.Amount.Equal(decimal.NewFromInt(200000)) {
		t.Errorf("Amount = %s, want 200000", order.Amount)
	}
	if order.PromotionCode == nil || *order.PromotionCode != "WELCOME50K" {
		t.Errorf("PromotionCode = %v, want WELCOME50K", order.PromotionCode)
	}
	if !strings.HasPrefix(order.Code, "ORD-") {
		t.Errorf("order code %q missing ORD- prefix", order.Code)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %q, want pending", order.Status)
	}
	if len(order.OrderItems) != 1 {
		t.Fatalf("order items = %d, want 1", len(order.OrderItems))
	}
	if !order.OrderItems[0].Amount.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("line amount = %s, want 250000", order.OrderItems[0].Amount)
	}
	if order.OrderItems[0].ProductSku != "p1-oak-table" {
		t.Errorf("ProductSku = %q, want p1-oak-table", order.OrderItems[0].ProductSku)
	}

	if f.cartRepo.carts[cart.ID].Status != models.CartStatusOrdered {
		t.Error("cart not marked ordered")
	}

	promo, _ := f.promotionRepo.FindByCode(ctx, "WELCOME50K")
	if promo.NumberUses != 1 {
		t.Errorf("NumberUses = %d, want 1", promo.NumberUses)
	}
	if len(f.usageRepo.usages) != 1 {
		t.Fatalf("usage rows = %d, want 1", len(f.usageRepo.usages))
	}
	if f.usageRepo.usages[0].OrderID != order.ID {
		t.Error("usage row not linked to the order")
	}
}

func TestPlaceOrderWithoutPromotion(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.OwnerGuest("sess-1")
	f.seedCart(t, owner, map[string]int{"p1": 1, "p2": 2})

	order, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if !order.Amount.Equal(decimal.NewFromInt(375000)) {
		t.Errorf("Amount = %s, want 375000", order.Amount)
	}
	if !order.Discount.IsZero() {
		t.Errorf("Discount = %s, want 0", order.Discount)
	}
	if order.UserID != nil {
		t.Error("guest order must not carry a user id")
	}
	if len(f.usageRepo.usages) != 0 {
		t.Error("usage row recorded without a promotion")
	}
}

func TestPlaceOrderSnapshotsProductSku(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.OwnerGuest("sess-1")
	f.seedCart(t, owner, map[string]int{"p1": 1, "p2": 2})

	order, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if len(order.OrderItems) != 2 {
		t.Fatalf("order items = %d, want 2", len(order.OrderItems))
	}
	for _, item := range order.OrderItems {
		want := item.ProductID + "-oak-table"
		if item.ProductSku != want {
			t.Errorf("ProductSku = %q, want %q", item.ProductSku, want)
		}
	}
}

func TestPlaceOrderWithoutCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.PlaceOrder(context.Background(), models.OwnerGuest("sess-1"), shippingInfo(), "")
	if !errors.Is(err, ErrCartNotFound) {
		t.Errorf("err = %v, want ErrCartNotFound", err)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.OwnerGuest("sess-1")
	f.seedCart(t, owner, nil)

	_, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), "")
	if !errors.Is(err, ErrCartEmpty) {
		t.Errorf("err = %v, want ErrCartEmpty", err)
	}
}

func TestPlaceOrderInvalidPromotion(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.OwnerGuest("sess-1")
	f.seedCart(t, owner, map[string]int{"p1": 1})

	_, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), "NOPE")
	if !errors.Is(err, ErrInvalidPromotion) {
		t.Errorf("err = %v, want ErrInvalidPromotion", err)
	}
	if len(f.orderRepo.orders) != 0 {
		t.Error("order created despite invalid promotion")
	}
}

func TestPlaceOrderPromotionRace(t *testing.T) {
	promo := &models.Promotion{
		Code:     "LAST1",
		Type:     models.PromotionTypeFixed,
		Discount: decimal.NewFromInt(10000),
		Limit:    5,
		Status:   models.PromotionStatusActive,
	}
	f := newCheckoutFixture(promo)
	owner := models.OwnerGuest("sess-1")
	f.seedCart(t, owner, map[string]int{"p1": 1})

	// The promotion looks redeemable but a concurrent checkout takes the
	// last slot before the guarded increment runs.
	var zero int64
	f.promotionRepo.incrementRows = &zero

	_, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), "LAST1")
	if !errors.Is(err, ErrPromotionExhausted) {
		t.Errorf("err = %v, want ErrPromotionExhausted", err)
	}
}

func TestPlaceOrderTwiceConsumesCart(t *testing.T) {
	f := newCheckoutFixture()
	owner := models.OwnerUser("user-1")
	f.seedCart(t, owner, map[string]int{"p1": 1})

	if _, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), ""); err != nil {
		t.Fatalf("first PlaceOrder: %v", err)
	}
	_, err := f.svc.PlaceOrder(context.Background(), owner, shippingInfo(), "")
	if !errors.Is(err, ErrCartNotFound) {
		t.Errorf("second PlaceOrder err = %v, want ErrCartNotFound", err)
	}
}
