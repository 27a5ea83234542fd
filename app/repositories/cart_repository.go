package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/hqvu/furnistore/app/models"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindPendingByOwner(ctx context.Context, tx *gorm.DB, owner models.OwnerContext) (*models.Cart, error)
	Create(ctx context.Context, tx *gorm.DB, cart *models.Cart) error
	// MarkOrdered flips pending -> ordered conditionally and reports how
	// many rows changed; zero means another checkout consumed the cart.
	MarkOrdered(ctx context.Context, tx *gorm.DB, cartID string) (int64, error)
	// ReassignToUser swaps a guest cart's owner to a user and clears the
	// session link.
	ReassignToUser(ctx context.Context, tx *gorm.DB, cartID, userID string) error
	Delete(ctx context.Context, tx *gorm.DB, cartID string) error
}

type gormCartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &gormCartRepository{db: db}
}

func (r *gormCartRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *gormCartRepository) FindPendingByOwner(ctx context.Context, tx *gorm.DB, owner models.OwnerContext) (*models.Cart, error) {
	if owner.IsEmpty() {
		return nil, nil
	}

	query := r.conn(tx).WithContext(ctx).Where("status = ?", models.CartStatusPending)
	if owner.IsUser() {
		query = query.Where("user_id = ?", owner.UserID)
	} else {
		query = query.Where("session_id = ?", owner.SessionID)
	}

	var cart models.Cart
	if err := query.First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *gormCartRepository) Create(ctx context.Context, tx *gorm.DB, cart *models.Cart) error {
	return r.conn(tx).WithContext(ctx).Create(cart).Error
}

func (r *gormCartRepository) MarkOrdered(ctx context.Context, tx *gorm.DB, cartID string) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ? AND status = ?", cartID, models.CartStatusPending).
		Updates(map[string]interface{}{
			"status":     models.CartStatusOrdered,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *gormCartRepository) ReassignToUser(ctx context.Context, tx *gorm.DB, cartID, userID string) error {
	return r.conn(tx).WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"user_id":    userID,
			"session_id": nil,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormCartRepository) Delete(ctx context.Context, tx *gorm.DB, cartID string) error {
	return r.conn(tx).WithContext(ctx).Delete(&models.Cart{}, "id = ?", cartID).Error
}
