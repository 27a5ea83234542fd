package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PromotionTypePercent = "percent"
	PromotionTypeFixed   = "fixed"

	PromotionStatusActive  = "active"
	PromotionStatusPending = "pending"
)

type Promotion struct {
	ID       string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code     string          `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Discount decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"discount"`
	Type     string          `gorm:"size:20;not null;default:percent" json:"type"`

	// MinAmount gates the order subtotal; MaxAmount caps the computed
	// discount for percent promotions.
	MinAmount decimal.Decimal     `gorm:"type:decimal(16,2);default:0" json:"min_amount"`
	MaxAmount decimal.NullDecimal `gorm:"type:decimal(16,2)" json:"max_amount"`

	// Limit of 0 means unlimited redemptions.
	Limit      int `gorm:"column:limit;default:0" json:"limit"`
	NumberUses int `gorm:"default:0" json:"number_uses"`

	ExpiredTime *time.Time `json:"expired_time"`

	// Surfaced to the cart UI for eligibility display; not enforced by
	// the validator.
	IsFreeShip    bool `gorm:"default:false" json:"is_free_ship"`
	NumberProduct int  `gorm:"default:0" json:"number_product"`

	Status    string    `gorm:"size:20;not null;default:active;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// Expired reports whether the promotion's expiry is strictly in the past.
// A nil ExpiredTime never expires.
func (p *Promotion) Expired(now time.Time) bool {
	return p.ExpiredTime != nil && p.ExpiredTime.Before(now)
}

// Exhausted reports whether the usage limit has been reached.
func (p *Promotion) Exhausted() bool {
	return p.Limit > 0 && p.NumberUses >= p.Limit
}
