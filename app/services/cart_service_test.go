package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hqvu/furnistore/app/models"
	"github.com/shopspring/decimal"
)

func newCartServiceForTest(products ...*models.Product) (*CartService, *fakeCartRepo, *fakeCartItemRepo) {
	cartRepo := newFakeCartRepo()
	itemRepo := newFakeCartItemRepo()
	svc := NewCartService(fakeTransactor{}, cartRepo, itemRepo, newFakeProductRepo(products...))
	return svc, cartRepo, itemRepo
}

func activeProduct(id string, price int64) *models.Product {
	return &models.Product{
		ID:        id,
		Name:      "Oak Table",
		Price:     decimal.NewFromInt(price),
		Inventory: 10,
		Status:    true,
	}
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	ctx := context.Background()
	svc, _, itemRepo := newCartServiceForTest(activeProduct("p1", 125000))
	owner := models.OwnerGuest("sess-1")

	if _, err := svc.AddItem(ctx, owner, "p1", 2); err != nil {
		t.Fatalf("first AddItem: %v", err)
	}
	count, err := svc.AddItem(ctx, owner, "p1", 3)
	if err != nil {
		t.Fatalf("second AddItem: %v", err)
	}

	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
	if len(itemRepo.items) != 1 {
		t.Fatalf("line items = %d, want 1", len(itemRepo.items))
	}
	if itemRepo.items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", itemRepo.items[0].Quantity)
	}
}

func TestAddItemSnapshotsSalePrice(t *testing.T) {
	product := activeProduct("p1", 300000)
	product.SalePrice = decimal.NewNullDecimal(decimal.NewFromInt(240000))
	svc, _, itemRepo := newCartServiceForTest(product)

	if _, err := svc.AddItem(context.Background(), models.OwnerGuest("sess-1"), "p1", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if !itemRepo.items[0].Price.Equal(decimal.NewFromInt(240000)) {
		t.Errorf("snapshot price = %s, want 240000", itemRepo.items[0].Price)
	}
}

func TestAddItemInactiveProduct(t *testing.T) {
	product := activeProduct("p1", 100000)
	product.Status = false
	svc, _, _ := newCartServiceForTest(product)

	_, err := svc.AddItem(context.Background(), models.OwnerGuest("sess-1"), "p1", 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestAddItemInsufficientStock(t *testing.T) {
	product := activeProduct("p1", 100000)
	product.Inventory = 2
	svc, _, _ := newCartServiceForTest(product)

	_, err := svc.AddItem(context.Background(), models.OwnerGuest("sess-1"), "p1", 3)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock", err)
	}
}

func TestGetCartWithoutCart(t *testing.T) {
	svc, _, _ := newCartServiceForTest()

	count, items, err := svc.GetCart(context.Background(), models.OwnerGuest("sess-1"), true)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if count != 0 || items != nil {
		t.Errorf("got count %d items %v, want empty cart", count, items)
	}
}

func TestUpdateItemZeroQuantityRemoves(t *testing.T) {
	ctx := context.Background()
	svc, _, itemRepo := newCartServiceForTest(activeProduct("p1", 100000))
	owner := models.OwnerGuest("sess-1")

	if _, err := svc.AddItem(ctx, owner, "p1", 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := itemRepo.items[0].ID

	count, err := svc.UpdateItem(ctx, owner, itemID, 0)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if len(itemRepo.items) != 0 {
		t.Errorf("line items = %d, want 0", len(itemRepo.items))
	}
}

func TestUpdateItemUnknownItem(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartServiceForTest(activeProduct("p1", 100000))
	owner := models.OwnerGuest("sess-1")

	if _, err := svc.AddItem(ctx, owner, "p1", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	_, err := svc.UpdateItem(ctx, owner, "missing", 2)
	if !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("err = %v, want ErrCartItemNotFound", err)
	}
}

func TestMergeOnAuthReassignsGuestCart(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo, _ := newCartServiceForTest(activeProduct("p1", 100000))

	if _, err := svc.AddItem(ctx, models.OwnerGuest("sess-1"), "p1", 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := svc.MergeOnAuth(ctx, "sess-1", "user-1"); err != nil {
		t.Fatalf("MergeOnAuth: %v", err)
	}

	cart, err := cartRepo.FindPendingByOwner(ctx, nil, models.OwnerUser("user-1"))
	if err != nil || cart == nil {
		t.Fatalf("user cart missing after merge: %v", err)
	}
	if cart.SessionID != nil {
		t.Error("session link not cleared on reassigned cart")
	}
	if guest, _ := cartRepo.FindPendingByOwner(ctx, nil, models.OwnerGuest("sess-1")); guest != nil {
		t.Error("guest cart still resolvable after merge")
	}
}

func TestMergeOnAuthCombinesCarts(t *testing.T) {
	ctx := context.Background()
	svc, cartRepo, itemRepo := newCartServiceForTest(
		activeProduct("p1", 100000),
		activeProduct("p2", 200000),
	)

	// User already has p1 x1; the guest adds p1 x2 and p2 x1.
	if _, err := svc.AddItem(ctx, models.OwnerUser("user-1"), "p1", 1); err != nil {
		t.Fatalf("AddItem user: %v", err)
	}
	if _, err := svc.AddItem(ctx, models.OwnerGuest("sess-1"), "p1", 2); err != nil {
		t.Fatalf("AddItem guest: %v", err)
	}
	if _, err := svc.AddItem(ctx, models.OwnerGuest("sess-1"), "p2", 1); err != nil {
		t.Fatalf("AddItem guest: %v", err)
	}

	if err := svc.MergeOnAuth(ctx, "sess-1", "user-1"); err != nil {
		t.Fatalf("MergeOnAuth: %v", err)
	}

	userCart, _ := cartRepo.FindPendingByOwner(ctx, nil, models.OwnerUser("user-1"))
	if userCart == nil {
		t.Fatal("user cart missing after merge")
	}
	count, _ := itemRepo.SumQuantity(ctx, userCart.ID)
	if count != 4 {
		t.Errorf("merged count = %d, want 4", count)
	}

	items, _ := itemRepo.FindByCart(ctx, nil, userCart.ID)
	if len(items) != 2 {
		t.Fatalf("merged lines = %d, want 2", len(items))
	}
	for _, item := range items {
		if item.ProductID == "p1" && item.Quantity != 3 {
			t.Errorf("p1 quantity = %d, want 3", item.Quantity)
		}
	}

	if len(cartRepo.carts) != 1 {
		t.Errorf("carts remaining = %d, want 1", len(cartRepo.carts))
	}
}

func TestMergeOnAuthNoGuestCart(t *testing.T) {
	svc, _, _ := newCartServiceForTest()
	if err := svc.MergeOnAuth(context.Background(), "sess-1", "user-1"); err != nil {
		t.Fatalf("MergeOnAuth with no guest cart: %v", err)
	}
}
