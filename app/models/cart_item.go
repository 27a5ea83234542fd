package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem holds a price snapshot captured when the product was added;
// it is not re-priced from the live product record. The (cart_id,
// product_id) pair is unique so concurrent adds collapse into one row.
type CartItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartID    string          `gorm:"size:36;not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	Cart      *Cart           `gorm:"foreignKey:CartID" json:"-"`
	ProductID string          `gorm:"size:36;not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}

// Subtotal is the line amount at the snapshot price.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
