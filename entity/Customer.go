package entity

import (
	"gorm.io/gorm"
)

// Customer is created lazily on first table login (phone + name).
// Phone is unique within one restaurant, not globally.
type Customer struct {
	gorm.Model
	Name     string `json:"name"`
	Phone    string `gorm:"index:idx_customer_owner_phone,unique" json:"phone"`
	Point    int    `json:"point"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	OwnerID uint  `gorm:"index:idx_customer_owner_phone,unique" json:"ownerId"`
	Owner   Owner `json:"-"`

	Orders []Order `json:"-"`
}
