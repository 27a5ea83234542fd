package fakers

import (
	"testing"

	"github.com/hqvu/furnistore/app/models"
	"golang.org/x/crypto/bcrypt"
)

func TestUserFaker(t *testing.T) {
	user := UserFaker()

	if user.Name == "" || user.Email == "" || user.Phone == "" {
		t.Errorf("incomplete user: %+v", user)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("Role = %q, want customer", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password")); err != nil {
		t.Errorf("password hash does not verify: %v", err)
	}
}

func TestProductFaker(t *testing.T) {
	category := &models.Category{ID: "c1", Name: "Sofas", Slug: "sofas"}

	product := ProductFaker(nil, category)

	if product.ID == "" || product.Name == "" || product.Slug == "" {
		t.Errorf("incomplete product: %+v", product)
	}
	if !product.Status {
		t.Error("seeded product must be active")
	}
	if product.Inventory < 1 {
		t.Errorf("Inventory = %d, want positive", product.Inventory)
	}
	if !product.Price.IsPositive() {
		t.Errorf("Price = %s, want positive", product.Price)
	}
	if product.SalePrice.Valid && !product.SalePrice.Decimal.LessThan(product.Price) {
		t.Errorf("SalePrice %s not below Price %s", product.SalePrice.Decimal, product.Price)
	}
	if len(product.Categories) != 1 || product.Categories[0].ID != "c1" {
		t.Errorf("Categories = %+v, want the given category", product.Categories)
	}
	if len(product.Gallery) == 0 {
		t.Error("expected at least one gallery image")
	}
	for _, img := range product.Gallery {
		if img.ProductID != product.ID {
			t.Errorf("gallery image linked to %q, want %q", img.ProductID, product.ID)
		}
	}
}
