package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending       = "pending"
	OrderStatusConfirmed     = "confirmed"
	OrderStatusProcessing    = "processing"
	OrderStatusReadyToShip   = "ready_to_ship"
	OrderStatusDelivering    = "delivering"
	OrderStatusFinished      = "finished"
	OrderStatusRequestRefund = "request_refund"
	OrderStatusRefunded      = "refunded"
	OrderStatusCancelled     = "cancelled"
)

var OrderStatuses = map[string]bool{
	OrderStatusPending:       true,
	OrderStatusConfirmed:     true,
	OrderStatusProcessing:    true,
	OrderStatusReadyToShip:   true,
	OrderStatusDelivering:    true,
	OrderStatusFinished:      true,
	OrderStatusRequestRefund: true,
	OrderStatusRefunded:      true,
	OrderStatusCancelled:     true,
}

// Order is an immutable checkout snapshot. Amount is the final payable
// total: item amounts minus discount plus shipping fee.
type Order struct {
	ID     string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID *string `gorm:"size:36;index" json:"user_id"`
	Code   string  `gorm:"size:50;not null;uniqueIndex" json:"code"`

	Name       string `gorm:"size:255;not null" json:"name"`
	Phone      string `gorm:"size:30;not null" json:"phone"`
	Email      string `gorm:"size:255" json:"email"`
	Address    string `gorm:"size:500;not null" json:"address"`
	ProvinceID int    `json:"province_id"`
	DistrictID int    `json:"district_id"`
	CommuneID  int    `json:"commune_id"`
	Note       string `gorm:"type:text" json:"note"`

	Status        string          `gorm:"size:30;not null;default:pending;index" json:"status"`
	Amount        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	Discount      decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"discount"`
	ShippingFee   decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"shipping_fee"`
	PromotionCode *string         `gorm:"size:50" json:"promotion_code"`

	OrderItems []OrderItem    `json:"items,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
