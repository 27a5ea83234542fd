package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CartStatusPending = "pending"
	CartStatusOrdered = "ordered"
)

// Cart belongs to either a user or a guest session, never both. There is
// at most one pending cart per owner; a cart that reached "ordered" is
// never reused.
type Cart struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    *string `gorm:"size:36;index"`
	SessionID *string `gorm:"size:36;index"`
	Status    string  `gorm:"size:20;not null;default:pending;index"`
	CartItems []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
