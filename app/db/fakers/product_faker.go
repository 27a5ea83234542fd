package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hqvu/furnistore/app/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserFaker() *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	return &models.User{
		Name:     faker.Name(),
		Email:    faker.Email(),
		Password: string(hashed),
		Phone:    faker.Phonenumber(),
		Role:     models.RoleCustomer,
	}
}

func ProductFaker(db *gorm.DB, category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	// Prices land on whole thousands, the way VND price tags do.
	price := decimal.NewFromInt(int64(rand.Intn(20)+1) * 500000)

	var salePrice decimal.NullDecimal
	if rand.Intn(2) == 0 {
		salePrice = decimal.NewNullDecimal(price.Mul(decimal.NewFromFloat(0.8)).Round(0))
	}

	gallery := make([]models.ProductImage, rand.Intn(3)+1)
	for i := range gallery {
		gallery[i] = models.ProductImage{
			ProductID: productID,
			ImageURL:  "/images/products/placeholder.jpg",
		}
	}

	return &models.Product{
		ID:          productID,
		Name:        name,
		Slug:        slug.Make(name + "-" + productID[:6]),
		Image:       "/images/products/placeholder.jpg",
		Description: faker.Sentence(),
		Content:     faker.Paragraph(),
		Price:       price,
		SalePrice:   salePrice,
		Inventory:   rand.Intn(20) + 5,
		Status:      true,
		IsFeatured:  rand.Intn(3) == 0,
		Categories:  []models.Category{*category},
		Gallery:     gallery,
	}
}
