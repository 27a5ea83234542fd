package migrations

import (
	"github.com/hqvu/furnistore/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Promotion{},
		&models.Order{},
		&models.OrderItem{},
		&models.PromotionUsage{},
		&models.Location{},
	)
}
