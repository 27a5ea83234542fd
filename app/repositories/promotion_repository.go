package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hqvu/furnistore/app/helpers"
	"github.com/hqvu/furnistore/app/models"
	"gorm.io/gorm"
)

type PromotionRepository interface {
	// FindActiveByCode looks a code up case-insensitively among active
	// promotions; nil when absent.
	FindActiveByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Promotion, error)
	// IncrementUsage bumps number_uses atomically, guarded by the usage
	// limit; zero rows means the limit was hit by a concurrent redemption.
	IncrementUsage(ctx context.Context, tx *gorm.DB, promotionID string) (int64, error)
	ListActive(ctx context.Context, now time.Time) ([]models.Promotion, error)

	GetByID(ctx context.Context, id string) (*models.Promotion, error)
	FindByCode(ctx context.Context, code string) (*models.Promotion, error)
	List(ctx context.Context, p helpers.Pagination) ([]models.Promotion, int64, error)
	Create(ctx context.Context, promotion *models.Promotion) error
	Update(ctx context.Context, promotion *models.Promotion) error
	Delete(ctx context.Context, id string) error
}

type gormPromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &gormPromotionRepository{db: db}
}

func (r *gormPromotionRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *gormPromotionRepository) FindActiveByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.conn(tx).WithContext(ctx).
		Where("UPPER(code) = ? AND status = ?", strings.ToUpper(strings.TrimSpace(code)), models.PromotionStatusActive).
		First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *gormPromotionRepository) IncrementUsage(ctx context.Context, tx *gorm.DB, promotionID string) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Model(&models.Promotion{}).
		Where("id = ? AND (`limit` = 0 OR number_uses < `limit`)", promotionID).
		UpdateColumn("number_uses", gorm.Expr("number_uses + 1"))
	return res.RowsAffected, res.Error
}

func (r *gormPromotionRepository) ListActive(ctx context.Context, now time.Time) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.WithContext(ctx).
		Where("status = ?", models.PromotionStatusActive).
		Where("expired_time IS NULL OR expired_time > ?", now).
		Order("created_at DESC").
		Find(&promotions).Error
	return promotions, err
}

func (r *gormPromotionRepository) GetByID(ctx context.Context, id string) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *gormPromotionRepository) FindByCode(ctx context.Context, code string) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).
		Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *gormPromotionRepository) List(ctx context.Context, p helpers.Pagination) ([]models.Promotion, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Promotion{})
	if p.Search != "" {
		query = query.Where("code LIKE ?", "%"+p.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var promotions []models.Promotion
	err := query.Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&promotions).Error
	return promotions, total, err
}

func (r *gormPromotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *gormPromotionRepository) Update(ctx context.Context, promotion *models.Promotion) error {
	promotion.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *gormPromotionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Promotion{}, "id = ?", id).Error
}
