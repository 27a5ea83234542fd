package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a per-order snapshot of product, unit price and line
// amount, decoupled from later product edits.
type OrderItem struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID    string          `gorm:"size:36;not null;index" json:"order_id"`
	ProductID  string          `gorm:"size:36;not null;index" json:"product_id"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductSku string          `gorm:"size:255" json:"product_sku"`
	Price      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Amount     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
