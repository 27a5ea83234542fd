package repositories

import (
	"context"

	"github.com/hqvu/furnistore/app/models"
	"gorm.io/gorm"
)

type PromotionUsageRepository interface {
	Create(ctx context.Context, tx *gorm.DB, usage *models.PromotionUsage) error
}

type gormPromotionUsageRepository struct {
	db *gorm.DB
}

func NewPromotionUsageRepository(db *gorm.DB) PromotionUsageRepository {
	return &gormPromotionUsageRepository{db: db}
}

func (r *gormPromotionUsageRepository) Create(ctx context.Context, tx *gorm.DB, usage *models.PromotionUsage) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Create(usage).Error
}
