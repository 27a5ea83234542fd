package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/hqvu/furnistore/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemRepository interface {
	// UpsertAdd inserts a line item or, when the (cart, product) pair
	// already exists, adds to its quantity in a single statement.
	UpsertAdd(ctx context.Context, tx *gorm.DB, cartID, productID string, quantity int, price decimal.Decimal) error
	// FindByCart loads the lines with their products; checkout snapshots
	// the product slug from them.
	FindByCart(ctx context.Context, tx *gorm.DB, cartID string) ([]models.CartItem, error)
	FindByCartWithProducts(ctx context.Context, cartID string) ([]models.CartItem, error)
	FindByID(ctx context.Context, cartID, itemID string) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	Delete(ctx context.Context, cartID, itemID string) error
	DeleteByCart(ctx context.Context, tx *gorm.DB, cartID string) error
	// SumQuantity is the cart badge count: total units, not line rows.
	SumQuantity(ctx context.Context, cartID string) (int, error)
}

type gormCartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &gormCartItemRepository{db: db}
}

func (r *gormCartItemRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *gormCartItemRepository) UpsertAdd(ctx context.Context, tx *gorm.DB, cartID, productID string, quantity int, price decimal.Decimal) error {
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + VALUES(quantity)"),
				"updated_at": time.Now(),
			}),
		}).
		Create(&item).Error
}

func (r *gormCartItemRepository) FindByCart(ctx context.Context, tx *gorm.DB, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.conn(tx).WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *gormCartItemRepository) FindByCartWithProducts(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *gormCartItemRepository) FindByID(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormCartItemRepository) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormCartItemRepository) Delete(ctx context.Context, cartID, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{}).Error
}

func (r *gormCartItemRepository) DeleteByCart(ctx context.Context, tx *gorm.DB, cartID string) error {
	return r.conn(tx).WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

func (r *gormCartItemRepository) SumQuantity(ctx context.Context, cartID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}
