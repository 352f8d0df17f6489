package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor currency units
	Picture     string `json:"picture"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	OwnerID uint  `json:"ownerId"`
	Owner   Owner `json:"-"`

	OrderDetails []OrderDetail `json:"-"`
}
