package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories. The tx argument is
// ignored; fakeTransactor runs the callback with a nil handle.

type fakeTransactor struct{}

func (fakeTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeCartRepo struct {
	carts map[string]*models.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*models.Cart{}}
}

func (r *fakeCartRepo) FindPendingByOwner(ctx context.Context, tx *gorm.DB, owner models.OwnerContext) (*models.Cart, error) {
	if owner.IsEmpty() {
		return nil, nil
	}
	for _, cart := range r.carts {
		if cart.Status != models.CartStatusPending {
			continue
		}
		if owner.IsUser() {
			if cart.UserID != nil && *cart.UserID == owner.UserID {
				return cart, nil
			}
		} else if cart.SessionID != nil && *cart.SessionID == owner.SessionID {
			return cart, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) Create(ctx context.Context, tx *gorm.DB, cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.ID] = cart
	return nil
}

func (r *fakeCartRepo) MarkOrdered(ctx context.Context, tx *gorm.DB, cartID string) (int64, error) {
	cart, ok := r.carts[cartID]
	if !ok || cart.Status != models.CartStatusPending {
		return 0, nil
	}
	cart.Status = models.CartStatusOrdered
	return 1, nil
}

func (r *fakeCartRepo) ReassignToUser(ctx context.Context, tx *gorm.DB, cartID, userID string) error {
	if cart, ok := r.carts[cartID]; ok {
		cart.UserID = &userID
		cart.SessionID = nil
	}
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, tx *gorm.DB, cartID string) error {
	delete(r.carts, cartID)
	return nil
}

type fakeCartItemRepo struct {
	items []*models.CartItem
}

func newFakeCartItemRepo() *fakeCartItemRepo {
	return &fakeCartItemRepo{}
}

func (r *fakeCartItemRepo) UpsertAdd(ctx context.Context, tx *gorm.DB, cartID, productID string, quantity int, price decimal.Decimal) error {
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += quantity
			return nil
		}
	}
	r.items = append(r.items, &models.CartItem{
		ID:        uuid.New().String(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	})
	return nil
}

func (r *fakeCartItemRepo) FindByCart(ctx context.Context, tx *gorm.DB, cartID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range r.items {
		if item.CartID == cartID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeCartItemRepo) FindByCartWithProducts(ctx context.Context, cartID string) ([]models.CartItem, error) {
	return r.FindByCart(ctx, nil, cartID)
}

func (r *fakeCartItemRepo) FindByID(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	for _, item := range r.items {
		if item.CartID == cartID && item.ID == itemID {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeCartItemRepo) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	for _, item := range r.items {
		if item.CartID == cartID && item.ID == itemID {
			item.Quantity = quantity
		}
	}
	return nil
}

func (r *fakeCartItemRepo) Delete(ctx context.Context, cartID, itemID string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if !(item.CartID == cartID && item.ID == itemID) {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeCartItemRepo) DeleteByCart(ctx context.Context, tx *gorm.DB, cartID string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeCartItemRepo) SumQuantity(ctx context.Context, cartID string) (int, error) {
	total := 0
	for _, item := range r.items {
		if item.CartID == cartID {
			total += item.Quantity
		}
	}
	return total, nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*models.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, s string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Slug == s {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Search(ctx context.Context, q string, limit int) ([]models.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context, p helpers.Pagination) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product, categoryIDs []string, gallery []string) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product, categoryIDs []string, gallery []string) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakePromotionRepo struct {
	promotions map[string]*models.Promotion

	// When set, IncrementUsage reports this row count instead of
	// applying the guard, to simulate losing a concurrent redemption.
	incrementRows *int64
}

func newFakePromotionRepo(promotions ...*models.Promotion) *fakePromotionRepo {
	r := &fakePromotionRepo{promotions: map[string]*models.Promotion{}}
	for _, p := range promotions {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		r.promotions[p.ID] = p
	}
	return r
}

func (r *fakePromotionRepo) FindActiveByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Promotion, error) {
	needle := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range r.promotions {
		if strings.ToUpper(p.Code) == needle && p.Status == models.PromotionStatusActive {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePromotionRepo) IncrementUsage(ctx context.Context, tx *gorm.DB, promotionID string) (int64, error) {
	if r.incrementRows != nil {
		return *r.incrementRows, nil
	}
	p, ok := r.promotions[promotionID]
	if !ok {
		return 0, nil
	}
	if p.Limit > 0 && p.NumberUses >= p.Limit {
		return 0, nil
	}
	p.NumberUses++
	return 1, nil
}

func (r *fakePromotionRepo) ListActive(ctx context.Context, now time.Time) ([]models.Promotion, error) {
	var out []models.Promotion
	for _, p := range r.promotions {
		if p.Status == models.PromotionStatusActive && !p.Expired(now) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePromotionRepo) GetByID(ctx context.Context, id string) (*models.Promotion, error) {
	return r.promotions[id], nil
}

func (r *fakePromotionRepo) FindByCode(ctx context.Context, code string) (*models.Promotion, error) {
	needle := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range r.promotions {
		if strings.ToUpper(p.Code) == needle {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePromotionRepo) List(ctx context.Context, p helpers.Pagination) ([]models.Promotion, int64, error) {
	return nil, 0, nil
}

func (r *fakePromotionRepo) Create(ctx context.Context, promotion *models.Promotion) error {
	if promotion.ID == "" {
		promotion.ID = uuid.New().String()
	}
	r.promotions[promotion.ID] = promotion
	return nil
}

func (r *fakePromotionRepo) Update(ctx context.Context, promotion *models.Promotion) error {
	r.promotions[promotion.ID] = promotion
	return nil
}

func (r *fakePromotionRepo) Delete(ctx context.Context, id string) error {
	delete(r.promotions, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindByCode(ctx context.Context, code string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.Code == code {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, f repositories.OrderFilter) ([]models.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	for _, o := range r.orders {
		if o.ID == orderID {
			o.Status = status
		}
	}
	return nil
}

type fakeUsageRepo struct {
	usages []*models.PromotionUsage
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{}
}

func (r *fakeUsageRepo) Create(ctx context.Context, tx *gorm.DB, usage *models.PromotionUsage) error {
	r.usages = append(r.usages, usage)
	return nil
}
