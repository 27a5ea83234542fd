package seeders

import (
	"log"
	"time"

	"github.com/gosimple/slug"
	"github.com/hqvu/furnistore/app/db/fakers"
	"github.com/hqvu/furnistore/app/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var categoryNames = []string{"Sofas", "Tables", "Chairs", "Beds", "Storage", "Lighting"}

func DBSeed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCustomers(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedPromotions(db); err != nil {
		return err
	}
	if err := seedLocations(db); err != nil {
		return err
	}
	log.Println("seeding complete")
	return nil
}

func seedAdmin(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@furnistore.local",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	return db.FirstOrCreate(admin, models.User{Email: admin.Email}).Error
}

func seedCustomers(db *gorm.DB) error {
	for i := 0; i < 5; i++ {
		if err := db.Create(fakers.UserFaker()).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(db *gorm.DB) error {
	for _, name := range categoryNames {
		category := &models.Category{Name: name, Slug: slug.Make(name)}
		if err := db.FirstOrCreate(category, models.Category{Slug: category.Slug}).Error; err != nil {
			return err
		}
		for i := 0; i < 4; i++ {
			if err := db.Create(fakers.ProductFaker(db, category)).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedPromotions(db *gorm.DB) error {
	nextMonth := time.Now().AddDate(0, 1, 0)
	promotions := []models.Promotion{
		{
			Code:      "SUMMER10",
			Discount:  decimal.NewFromInt(10),
			Type:      models.PromotionTypePercent,
			MinAmount: decimal.NewFromInt(500000),
			MaxAmount: decimal.NewNullDecimal(decimal.NewFromInt(100000)),
			Status:    models.PromotionStatusActive,
		},
		{
			Code:        "WELCOME50K",
			Discount:    decimal.NewFromInt(50000),
			Type:        models.PromotionTypeFixed,
			MinAmount:   decimal.NewFromInt(250000),
			ExpiredTime: &nextMonth,
			Limit:       100,
			Status:      models.PromotionStatusActive,
		},
		{
			Code:       "FREESHIP",
			Discount:   decimal.NewFromInt(5),
			Type:       models.PromotionTypePercent,
			IsFreeShip: true,
			Status:     models.PromotionStatusActive,
		},
	}
	for i := range promotions {
		if err := db.FirstOrCreate(&promotions[i], models.Promotion{Code: promotions[i].Code}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedLocations(db *gorm.DB) error {
	provinces := []string{"Hà Nội", "Đà Nẵng", "Hồ Chí Minh"}
	for _, name := range provinces {
		province := &models.Location{Name: name, Type: models.LocationTypeProvince}
		if err := db.FirstOrCreate(province, models.Location{Name: name, Type: models.LocationTypeProvince}).Error; err != nil {
			return err
		}
		district := &models.Location{Name: "Quận 1", Type: models.LocationTypeDistrict, ParentID: &province.ID}
		if err := db.FirstOrCreate(district, models.Location{Name: district.Name, Type: district.Type, ParentID: district.ParentID}).Error; err != nil {
			return err
		}
		commune := &models.Location{Name: "Phường 1", Type: models.LocationTypeCommune, ParentID: &district.ID}
		if err := db.FirstOrCreate(commune, models.Location{Name: commune.Name, Type: commune.Type, ParentID: commune.ParentID}).Error; err != nil {
			return err
		}
	}
	return nil
}
