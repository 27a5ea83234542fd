package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string              `gorm:"size:255;not null" json:"name"`
	Slug        string              `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Image       string              `gorm:"size:500" json:"image"`
	Description string              `gorm:"type:text" json:"description"`
	Content     string              `gorm:"type:longtext" json:"content"`
	Price       decimal.Decimal     `gorm:"type:decimal(16,2);not null" json:"price"`
	SalePrice   decimal.NullDecimal `gorm:"type:decimal(16,2)" json:"sale_price"`
	Inventory   int                 `gorm:"default:0" json:"inventory"`
	Status      bool                `gorm:"default:true" json:"status"`
	IsFeatured  bool                `gorm:"default:false" json:"is_featured"`
	Categories  []Category          `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Gallery     []ProductImage      `json:"gallery,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
}

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;index" json:"product_id"`
	ImageURL  string `gorm:"size:500;not null" json:"image_url"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}

// EffectivePrice is the unit price charged in carts: the sale price when
// one is set, the regular price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}
