package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionUsage is an append-only audit record linking a phone number,
// a promotion and the order it was redeemed on. Written at checkout,
// not read back for gating yet.
type PromotionUsage struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Phone       string `gorm:"size:30;index"`
	PromotionID string `gorm:"size:36;not null;index"`
	OrderID     string `gorm:"size:36;not null;index"`
	CreatedAt   time.Time
}

func (pu *PromotionUsage) BeforeCreate(tx *gorm.DB) (err error) {
	if pu.ID == "" {
		pu.ID = uuid.New().String()
	}
	return
}
